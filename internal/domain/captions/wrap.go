package captions

import "strings"

// DefaultWidth is the caption line budget, in runes.
const DefaultWidth = 60

// Prepare turns free-form text into a drawtext value: newlines dropped,
// wrapped to DefaultWidth, then escaped. Wrapping comes first so an escape
// sequence is never split by a hyphenated chunk.
func Prepare(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\n", "")
	return Escape(strings.Join(Wrap(text, DefaultWidth), "\n"))
}

// Wrap packs space-separated words into lines shorter than width runes.
// Words that do not fit on a line of their own are cut into hyphenated
// chunks. Empty text yields one empty line.
func Wrap(text string, width int) []string {
	if width < 2 {
		width = 2
	}

	var words []string
	for _, w := range strings.Split(text, " ") {
		words = append(words, chunkWord(w, width-1)...)
	}

	var lines []string
	var cur []rune
	for _, w := range words {
		wr := []rune(w)
		next := len(wr)
		if len(cur) > 0 {
			next += len(cur) + 1
		}
		if next >= width {
			lines = append(lines, string(cur))
			cur = cur[:0]
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, wr...)
	}
	return append(lines, string(cur))
}

// chunkWord splits word into pieces of at most limit runes, hyphen
// included. Every piece but the last ends in '-'.
func chunkWord(word string, limit int) []string {
	r := []rune(word)
	if len(r) <= limit {
		if len(r) == 0 {
			return nil
		}
		return []string{word}
	}

	step, hyphen := limit-1, "-"
	if step < 1 {
		// no room for a hyphen on a one-rune line
		step, hyphen = 1, ""
	}

	var out []string
	for len(r) > limit {
		out = append(out, string(r[:step])+hyphen)
		r = r[step:]
	}
	return append(out, string(r))
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `'\\\''`,
	`"`, `\"`,
	`%`, `\%`,
	`:`, `\:`,
	`&`, `\&`,
)

// Escape makes s safe inside a single-quoted drawtext option in a filter
// script. A quote cannot appear inside quotes, so it closes the quoted run,
// emits an escaped quote and reopens.
func Escape(s string) string {
	return escaper.Replace(s)
}
