package reddit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/vartanbeno/go-reddit/v2/reddit"

	"github.com/darccyy/reddit-video/internal/types"
)

func TestToPost(t *testing.T) {
	got := toPost(&reddit.Post{
		ID:               "abc123",
		Title:            "What is a fact?",
		Body:             "body text",
		Permalink:        "/r/askreddit/comments/abc123/what_is_a_fact/",
		Score:            -4,
		NumberOfComments: 1234,
	})
	if got.ID != "abc123" || got.Title != "What is a fact?" || got.Body != "body text" {
		t.Fatalf("unexpected post: %+v", got)
	}
	if got.Link != "/r/askreddit/comments/abc123/what_is_a_fact/" {
		t.Fatalf("unexpected link: %q", got.Link)
	}
	if got.Score != 0 {
		t.Fatalf("negative score must clamp to 0, got %d", got.Score)
	}
	if got.CommentCount != 1234 {
		t.Fatalf("unexpected comment count: %d", got.CommentCount)
	}
}

func TestNew_DefaultsUserAgent(t *testing.T) {
	a, err := New("", "", nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if a.client == nil || a.logf == nil {
		t.Fatalf("expected client and logger to be set")
	}
}

func listing(children ...string) string {
	return `{"kind":"Listing","data":{"after":null,"before":null,"children":[` + strings.Join(children, ",") + `]}}`
}

func postThing(id, title string, score, comments int) string {
	return fmt.Sprintf(`{"kind":"t3","data":{"id":%q,"name":"t3_%s","title":%q,"selftext":"","permalink":"/r/askreddit/comments/%s/","score":%d,"num_comments":%d}}`,
		id, id, title, id, score, comments)
}

func commentThing(id, body string) string {
	return fmt.Sprintf(`{"kind":"t1","data":{"id":%q,"name":"t1_%s","body":%q}}`, id, id, body)
}

type fakeReddit struct {
	mu      sync.Mutex
	queries map[string]url.Values
}

func (f *fakeReddit) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, ".json")
		f.mu.Lock()
		f.queries[path] = r.URL.Query()
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(path, "/r/askreddit/"):
			_, _ = io.WriteString(w, listing(
				postThing("p1", "first", 10, 3),
				postThing("p2", "second", 20, 4),
				postThing("p3", "third", 30, 5),
			))
		case path == "/comments/p2":
			_, _ = io.WriteString(w, "["+listing(postThing("p2", "second", 20, 4))+","+listing(
				commentThing("c1", "one"),
				commentThing("c2", ""),
				commentThing("c3", "two"),
				commentThing("c4", "three"),
			)+"]")
		default:
			t.Errorf("unexpected request %s", r.URL)
			http.NotFound(w, r)
		}
	})
}

func newFakeReddit(t *testing.T, logf func(string, ...any)) (*Adapter, *fakeReddit) {
	t.Helper()
	f := &fakeReddit{queries: map[string]url.Values{}}
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	a, err := New("reddit-video-test", srv.URL+"/", logf)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return a, f
}

func TestFetchPosts_SortSelectsListing(t *testing.T) {
	tests := []struct {
		sort     string
		wantTime bool
	}{
		{"top", true},
		{"controversial", true},
		{"new", false},
		{"hot", false},
		{"rising", false},
	}
	for _, tc := range tests {
		t.Run(tc.sort, func(t *testing.T) {
			a, f := newFakeReddit(t, nil)
			c := types.Criteria{Subreddit: "askreddit", Sort: tc.sort, Time: "week", Limit: 2}

			posts, err := a.FetchPosts(context.Background(), c)
			if err != nil {
				t.Fatalf("fetch posts: %v", err)
			}
			if len(posts) != 2 || posts[0].ID != "p1" || posts[1].Title != "second" {
				t.Fatalf("expected first two posts, got %+v", posts)
			}
			if posts[1].Score != 20 || posts[1].CommentCount != 4 {
				t.Fatalf("unexpected counts: %+v", posts[1])
			}

			q, ok := f.queries["/r/askreddit/"+tc.sort]
			if !ok {
				t.Fatalf("listing /r/askreddit/%s was not requested, got %v", tc.sort, f.queries)
			}
			if got := q.Get("limit"); got != "2" {
				t.Fatalf("limit = %q, want 2", got)
			}
			if got := q.Get("t"); tc.wantTime && got != "week" {
				t.Fatalf("t = %q, want week", got)
			} else if !tc.wantTime && q.Has("t") {
				t.Fatalf("%s must not send t, got %q", tc.sort, got)
			}
		})
	}
}

func TestFetchPosts_UnsupportedSort(t *testing.T) {
	a, _ := newFakeReddit(t, nil)
	_, err := a.FetchPosts(context.Background(), types.Criteria{Subreddit: "askreddit", Sort: "best", Limit: 1})
	if err == nil || !strings.Contains(err.Error(), `unsupported sort "best"`) {
		t.Fatalf("expected unsupported sort error, got %v", err)
	}
}

func TestFetchComments_SkipsEmptyBodies(t *testing.T) {
	var logged []string
	logf := func(format string, args ...any) { logged = append(logged, fmt.Sprintf(format, args...)) }
	a, _ := newFakeReddit(t, logf)

	comments, err := a.FetchComments(context.Background(), types.Criteria{Limit: 2}, types.Post{ID: "p2"})
	if err != nil {
		t.Fatalf("fetch comments: %v", err)
	}
	if len(comments) != 2 || comments[0].Body != "one" || comments[1].Body != "two" {
		t.Fatalf("expected [one two], got %+v", comments)
	}
	if len(logged) != 1 || !strings.Contains(logged[0], "missing body") {
		t.Fatalf("expected one skip notice, got %q", logged)
	}
}

func TestFetchComments_TransportError(t *testing.T) {
	a, err := New("reddit-video-test", "http://127.0.0.1:1/", nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, err = a.FetchComments(context.Background(), types.Criteria{Limit: 1}, types.Post{ID: "p2", Link: "/r/x/comments/p2/"})
	if !errors.Is(err, types.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}
