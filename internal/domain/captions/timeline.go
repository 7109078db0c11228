package captions

import (
	"fmt"
	"time"

	"github.com/darccyy/reddit-video/internal/types"
)

// OutroPadding is kept after the last fragment before the video is cut.
const OutroPadding = 2 * time.Second

type Entry struct {
	Clip  types.VoiceClip
	Start time.Duration
	End   time.Duration
}

// Timeline entries are contiguous: the first starts at zero and each
// starts where the previous one ended.
type Timeline struct {
	Entries []Entry
	Total   time.Duration
}

func BuildTimeline(clips []types.VoiceClip) Timeline {
	tl := Timeline{Entries: make([]Entry, 0, len(clips))}
	for _, c := range clips {
		start := tl.Total
		tl.Total += c.Duration
		tl.Entries = append(tl.Entries, Entry{Clip: c, Start: start, End: tl.Total})
	}
	return tl
}

// Directives returns one caption per entry, plus a persistent watermark
// when watermark is non-empty.
func Directives(tl Timeline, watermark string) []Directive {
	out := make([]Directive, 0, len(tl.Entries)+1)
	style := CaptionStyle()
	for _, e := range tl.Entries {
		out = append(out, Directive{
			Text:  Prepare(e.Clip.Text),
			Start: e.Start,
			End:   e.End,
			Style: style,
		})
	}
	if watermark != "" {
		out = append(out, Directive{
			Text:       Prepare(watermark),
			Start:      0,
			End:        tl.Total,
			Style:      WatermarkStyle(),
			Persistent: true,
		})
	}
	return out
}

// TrimTimestamp is where the rendered video is cut.
func (tl Timeline) TrimTimestamp() string {
	return FormatTimestamp(tl.Total + OutroPadding)
}

// FormatTimestamp renders d as H:MM:SS. Hours are not padded and the
// sub-second part is dropped.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	hs := secs / 3600
	ms := secs / 60 % 60
	ss := secs % 60
	return fmt.Sprintf("%d:%02d:%02d", hs, ms, ss)
}
