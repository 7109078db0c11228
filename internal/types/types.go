package types

import (
	"fmt"
	"time"
)

type Criteria struct {
	Subreddit string
	Sort      string
	Time      string
	Comments  bool
	Limit     int
	// Post is the index, within the fetched listing, of the post whose
	// comments are narrated when Comments is set.
	Post int
}

// Describe renders sort and time the way a listing header reads,
// e.g. "top of the month" or "hot".
func (c Criteria) Describe() string {
	if c.Sort != "top" {
		return c.Sort
	}
	if c.Time == "all" {
		return "top of all time"
	}
	return fmt.Sprintf("top of the %s", c.Time)
}

type VoiceSettings struct {
	Language string
	Gender   string
	Pitch    float64
	Rate     float64
}

// Fragmenter is implemented by anything that can be narrated.
type Fragmenter interface {
	Fragments() []string
}

type Post struct {
	ID           string
	Title        string
	Body         string
	Link         string
	Score        int
	CommentCount int
}

func (p Post) Fragments() []string { return []string{p.Title, p.Body} }

type Comment struct {
	Body string
}

func (c Comment) Fragments() []string { return []string{c.Body} }

// FragmentsOf flattens items into fragments, keeping order.
func FragmentsOf[T Fragmenter](items []T) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.Fragments()...)
	}
	return out
}

type VoiceClip struct {
	Text     string
	Audio    []byte
	Duration time.Duration
}

type Manifest struct {
	Subreddit string          `json:"subreddit"`
	Listing   string          `json:"listing"`
	Output    string          `json:"output"`
	TotalSec  float64         `json:"total_sec"`
	TrimTo    string          `json:"trim_to"`
	Fragments []ManifestEntry `json:"fragments"`
}

type ManifestEntry struct {
	ID       string  `json:"id"`
	StartSec float64 `json:"start_sec"`
	EndSec   float64 `json:"end_sec"`
	Text     string  `json:"text"`
	File     string  `json:"file"`
}
