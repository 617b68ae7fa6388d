package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_FlatJoinsWithSpaces(t *testing.T) {
	cues := []Cue{
		{Text: "hello", Start: 0, Duration: 1},
		{Text: "world", Start: 1.5, Duration: 1},
	}

	assert.Equal(t, "hello world", Render(cues, false))
}

func TestRender_FlatIsIdempotent(t *testing.T) {
	cues := []Cue{
		{Text: "a", Start: 0},
		{Text: "b", Start: 2},
	}

	first := Render(cues, false)
	second := Render(cues, false)
	assert.Equal(t, first, second)
}

func TestRender_WithTimestamps(t *testing.T) {
	segments := []Segment{
		{Start: 65, End: 95, Text: "hello"},
	}

	assert.Equal(t, "[00:01:05] hello", Render(segments, true))
}

func TestRender_TimestampLinesJoinedWithNewlines(t *testing.T) {
	cues := []Cue{
		{Text: "one", Start: 0},
		{Text: "two", Start: 3661},
	}

	assert.Equal(t, "[00:00:00] one\n[01:01:01] two", Render(cues, true))
}

func TestRender_AcceptsCuesAndSegmentsAlike(t *testing.T) {
	cues := []Cue{{Text: "x", Start: 30}}
	segments := []Segment{{Start: 30, End: 60, Text: "x"}}

	assert.Equal(t, Render(cues, true), Render(segments, true))
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", Render([]Cue(nil), false))
	assert.Equal(t, "", Render([]Segment{}, true))
}

func TestFormatTimestamp(t *testing.T) {
	testCases := []struct {
		start float64
		want  string
	}{
		{0, "00:00:00"},
		{65, "00:01:05"},
		{59.9, "00:00:59"},
		{3600, "01:00:00"},
		{86399, "23:59:59"},
		{86400 + 61, "00:01:01"}, // wraps past 24h
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, FormatTimestamp(tc.start), "start=%v", tc.start)
	}
}
