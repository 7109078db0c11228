package reddit

import (
	"context"
	"fmt"

	"github.com/vartanbeno/go-reddit/v2/reddit"

	"github.com/darccyy/reddit-video/internal/types"
)

// DefaultUserAgent mimics a desktop browser; the anonymous JSON API
// throttles generic agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; WOW64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/113.0.5666.197 Safari/537.36"

type Adapter struct {
	client *reddit.Client
	logf   func(format string, args ...any)
}

// New builds a read-only client. baseURL may be empty for reddit.com.
func New(userAgent, baseURL string, logf func(format string, args ...any)) (*Adapter, error) {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	opts := []reddit.Opt{reddit.WithUserAgent(userAgent)}
	if baseURL != "" {
		opts = append(opts, reddit.WithBaseURL(baseURL))
	}
	client, err := reddit.NewReadonlyClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("reddit client: %w", err)
	}
	return &Adapter{client: client, logf: logf}, nil
}

func (a *Adapter) FetchPosts(ctx context.Context, c types.Criteria) ([]types.Post, error) {
	list := reddit.ListOptions{Limit: c.Limit}
	withTime := &reddit.ListPostOptions{ListOptions: list, Time: c.Time}

	var (
		posts []*reddit.Post
		err   error
	)
	switch c.Sort {
	case "top":
		posts, _, err = a.client.Subreddit.TopPosts(ctx, c.Subreddit, withTime)
	case "controversial":
		posts, _, err = a.client.Subreddit.ControversialPosts(ctx, c.Subreddit, withTime)
	case "new":
		posts, _, err = a.client.Subreddit.NewPosts(ctx, c.Subreddit, &list)
	case "rising":
		posts, _, err = a.client.Subreddit.RisingPosts(ctx, c.Subreddit, &list)
	case "hot", "":
		posts, _, err = a.client.Subreddit.HotPosts(ctx, c.Subreddit, &list)
	default:
		return nil, fmt.Errorf("unsupported sort %q", c.Sort)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: fetch r/%s posts: %w", types.ErrTransport, c.Subreddit, err)
	}

	out := make([]types.Post, 0, len(posts))
	for _, p := range posts {
		if p == nil {
			continue
		}
		out = append(out, toPost(p))
		if len(out) >= c.Limit {
			break
		}
	}
	return out, nil
}

// FetchComments returns top-level comments of parent in the order reddit
// ranks them. Comments without a body (deleted, collapsed) are skipped.
func (a *Adapter) FetchComments(ctx context.Context, c types.Criteria, parent types.Post) ([]types.Comment, error) {
	pc, _, err := a.client.Post.Get(ctx, parent.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch comments of %s: %w", types.ErrTransport, parent.Link, err)
	}

	var out []types.Comment
	for _, cm := range pc.Comments {
		if cm == nil || cm.Body == "" {
			a.logf("comment missing body, skipping")
			continue
		}
		out = append(out, types.Comment{Body: cm.Body})
		if len(out) >= c.Limit {
			break
		}
	}
	return out, nil
}

func toPost(p *reddit.Post) types.Post {
	score := p.Score
	if score < 0 {
		score = 0
	}
	return types.Post{
		ID:           p.ID,
		Title:        p.Title,
		Body:         p.Body,
		Link:         p.Permalink,
		Score:        score,
		CommentCount: p.NumberOfComments,
	}
}
