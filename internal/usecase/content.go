package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/darccyy/reddit-video/internal/domain/numbers"
	"github.com/darccyy/reddit-video/internal/types"
)

// collectFragments fetches the listing and returns at most c.Limit
// non-empty fragments, in narration order.
func (u Usecase) collectFragments(ctx context.Context, c types.Criteria, logf func(string, ...any)) ([]string, error) {
	logf("fetching %s posts of r/%s...", c.Describe(), c.Subreddit)
	posts, err := u.d.Content.FetchPosts(ctx, c)
	if err != nil {
		return nil, err
	}
	for i, p := range posts {
		logf("%2d. %s", i, postLine(p))
	}

	var texts []string
	if !c.Comments {
		texts = types.FragmentsOf(posts)
	} else {
		if c.Post >= len(posts) {
			return nil, fmt.Errorf("content.post is %d but r/%s returned %d posts", c.Post, c.Subreddit, len(posts))
		}
		parent := posts[c.Post]
		logf("fetching top comments of %q...", parent.Title)
		comments, err := u.d.Content.FetchComments(ctx, c, parent)
		if err != nil {
			return nil, err
		}
		texts = append([]string{parent.Title}, types.FragmentsOf(comments)...)
	}

	return selectFragments(texts, c.Limit), nil
}

func selectFragments(texts []string, limit int) []string {
	out := make([]string, 0, limit)
	for _, t := range texts {
		if len(out) >= limit {
			break
		}
		if strings.TrimSpace(t) == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

// postLine is the listing row: comment count, score, then the title.
func postLine(p types.Post) string {
	return fmt.Sprintf("%s🗩 %s🖢  %s", numbers.Format(uint64(p.CommentCount)), numbers.Format(uint64(p.Score)), p.Title)
}
