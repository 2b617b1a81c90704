package pathd

import (
	"math"
	"strconv"
	"strings"

	"svgreduce/pkg/cfg"

	"github.com/tdewolff/minify/v2"
)

// formatNumber returns the shortest text that parses back to v.
func formatNumber(v float64) string {
	if isNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v == 0 {
		return "0"
	}
	return string(minify.Number([]byte(strconv.FormatFloat(v, 'f', -1, 64)), 15))
}

// render writes a command letter and its operands. Separators are left out
// where the grammar allows it: before a minus sign, and before a fraction
// that follows a number already holding a decimal point.
func render(code byte, args []float64, dev bool) string {
	var b strings.Builder
	b.WriteByte(code)
	prev := ""
	for i, v := range args {
		s := formatNumber(v)
		if i > 0 && !joins(prev, s, dev) {
			b.WriteByte(' ')
		}
		b.WriteString(s)
		prev = s
	}
	return b.String()
}

func joins(prev, next string, dev bool) bool {
	switch next[0] {
	case '-':
		return !dev
	case '.':
		return strings.IndexByte(prev, '.') >= 0 && strings.IndexAny(prev, "eE") < 0
	}
	return false
}

// spaceNegatives puts a space before every minus sign that starts a number.
func spaceNegatives(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '-' && i > 0 && (isDigit(s[i-1]) || s[i-1] == '.') {
			b.WriteByte(' ')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Serialize renders p as path data. With c.KeepShorter, commands converted
// from absolute form keep that form when it is shorter.
func Serialize(p Path, c cfg.Config) string {
	var b strings.Builder
	var prev Command
	var prevLetter byte
	for i, cmd := range p {
		text := render(cmd.Code, cmd.Args, c.DevMode)
		if cmd.Closes {
			text += "z"
		}
		if c.KeepShorter && cmd.Original != "" {
			alt := cmd.Original
			if c.DevMode {
				alt = spaceNegatives(alt)
			}
			if cmd.Closes {
				alt += "z"
			}
			if len(alt) < len(text) {
				text = alt
			}
		}

		letter := text[0]
		switch {
		case c.DevMode:
			b.WriteByte('\n')
		case c.CompactLetters && i > 0 && letter == prevLetter && !prev.Closes &&
			lower(letter) != 'm' && len(text) > 1 && text[1] == '-':
			text = text[1:]
		}
		b.WriteString(text)
		prev, prevLetter = cmd, letter
	}
	return b.String()
}
