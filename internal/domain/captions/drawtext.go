package captions

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Style struct {
	Font       string
	FontColor  string
	FontSize   int
	Box        bool
	BoxBorderW int
	BoxColor   string
	X          string
	Y          string
}

func defaultStyle() Style {
	return Style{
		Font:       "Sans",
		FontColor:  "white",
		FontSize:   32,
		BoxBorderW: 15,
		BoxColor:   "black@0.8",
		X:          "(w-text_w)/2",
		Y:          "(h-text_h)/2",
	}
}

// CaptionStyle is used for narrated fragments: boxed serif text, centered.
func CaptionStyle() Style {
	s := defaultStyle()
	s.Font = "Serif"
	s.Box = true
	return s
}

// WatermarkStyle sits in the upper right third, unboxed.
func WatermarkStyle() Style {
	s := defaultStyle()
	s.X = "w*0.8-text_w/2"
	s.Y = "h*0.3-text_h/2"
	return s
}

// Directive is one drawtext overlay. Text is already wrapped and escaped.
// A persistent directive has no enable predicate and shows for the whole
// video.
type Directive struct {
	Text       string
	Start      time.Duration
	End        time.Duration
	Style      Style
	Persistent bool
}

// Filter renders the directive as a drawtext filter.
func (d Directive) Filter() string {
	box := "0"
	if d.Style.Box {
		box = "1"
	}
	opts := [][2]string{
		{"font", d.Style.Font},
		{"fontcolor", d.Style.FontColor},
		{"fontsize", strconv.Itoa(d.Style.FontSize)},
		{"box", box},
		{"boxborderw", strconv.Itoa(d.Style.BoxBorderW)},
		{"boxcolor", d.Style.BoxColor},
		{"x", d.Style.X},
		{"y", d.Style.Y},
	}
	if !d.Persistent {
		opts = append(opts, [2]string{"enable", fmt.Sprintf("'gte(t,%s)*lt(t,%s)'", fmtSeconds(d.Start), fmtSeconds(d.End))})
	}
	opts = append(opts,
		[2]string{"expansion", "none"},
		[2]string{"text", "'" + d.Text + "'"},
	)

	parts := make([]string, 0, len(opts))
	for _, kv := range opts {
		parts = append(parts, kv[0]+"="+kv[1])
	}
	return "drawtext=" + strings.Join(parts, ":")
}

// FilterScript joins directives into a single filter chain, the content
// of a -filter_complex_script file.
func FilterScript(ds []Directive) string {
	filters := make([]string, 0, len(ds))
	for _, d := range ds {
		filters = append(filters, d.Filter())
	}
	return strings.Join(filters, ",")
}

func fmtSeconds(d time.Duration) string {
	sec := float64(d) / float64(time.Second)
	return strconv.FormatFloat(sec, 'f', 3, 64)
}
