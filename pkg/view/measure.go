package view

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Measurer estimates the rendered height of a node label.
type Measurer interface {
	Height(text string) float64
}

// MeasurerFunc adapts a function to [Measurer].
type MeasurerFunc func(text string) float64

func (f MeasurerFunc) Height(text string) float64 { return f(text) }

const (
	DefaultNodeWidth  = 240.0
	DefaultFontSize   = 14.0
	DefaultLineHeight = 18.0
	DefaultPadding    = 10.0

	// charWidth is the average glyph width as a fraction of the font size.
	charWidth = 0.55
)

// TextMeasurer wraps text greedily at word boundaries inside a fixed-width
// box and reports the resulting height. Words wider than a line are split.
type TextMeasurer struct {
	NodeWidth  float64
	FontSize   float64
	LineHeight float64
	Padding    float64 // applied on every side
}

// DefaultMeasurer returns a TextMeasurer with the default node geometry.
func DefaultMeasurer() TextMeasurer {
	return TextMeasurer{
		NodeWidth:  DefaultNodeWidth,
		FontSize:   DefaultFontSize,
		LineHeight: DefaultLineHeight,
		Padding:    DefaultPadding,
	}
}

// Height returns 2*Padding plus LineHeight for every wrapped line.
// Empty text still occupies one line.
func (t TextMeasurer) Height(text string) float64 {
	return 2*t.Padding + float64(t.Lines(text))*t.LineHeight
}

// CharsPerLine returns how many glyphs fit on one line, at least 1.
func (t TextMeasurer) CharsPerLine() int {
	avail := t.NodeWidth - 2*t.Padding
	glyph := t.FontSize * charWidth
	if avail <= 0 || glyph <= 0 {
		return 1
	}
	return max(1, int(math.Floor(avail/glyph)))
}

// Lines returns the number of lines text wraps to, at least 1.
func (t TextMeasurer) Lines(text string) int {
	limit := t.CharsPerLine()
	lines, cur := 1, 0
	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)
		switch {
		case cur == 0:
		case cur+1+n <= limit:
			cur += 1 + n
			continue
		default:
			lines++
		}
		for n > limit {
			lines++
			n -= limit
		}
		cur = n
	}
	return lines
}
