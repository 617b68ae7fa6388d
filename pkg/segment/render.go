package segment

import (
	"fmt"
	"math"
	"strings"
)

// Renderable is anything with a start time and a text body. Both Cue and
// Segment satisfy it, so Render accepts raw cues and built segments alike.
type Renderable interface {
	GetStart() float64
	GetText() string
}

func (c Cue) GetStart() float64 { return c.Start }
func (c Cue) GetText() string   { return c.Text }

func (s Segment) GetStart() float64 { return s.Start }
func (s Segment) GetText() string   { return s.Text }

// Render formats entries as one string. Without timestamps the texts are
// joined with single spaces; with timestamps each entry becomes a
// "[HH:MM:SS] text" line, hours wrapping modulo 24.
func Render[T Renderable](entries []T, includeTimestamps bool) string {
	if !includeTimestamps {
		texts := make([]string, len(entries))
		for i, entry := range entries {
			texts[i] = entry.GetText()
		}
		return strings.Join(texts, " ")
	}

	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = fmt.Sprintf("[%s] %s", FormatTimestamp(entry.GetStart()), entry.GetText())
	}
	return strings.Join(lines, "\n")
}

// FormatTimestamp renders seconds as zero-padded HH:MM:SS, flooring to whole
// seconds and wrapping past 24 hours.
func FormatTimestamp(start float64) string {
	total := int(math.Floor(start))
	hours := total / 3600 % 24
	minutes := total % 3600 / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
