// Package segment turns a time-ordered caption cue list into fixed-width
// time buckets and renders either representation as text.
package segment

import (
	"fmt"
	"math"

	apperrors "ytscribe/pkg/errors"
)

// Cue is a single caption entry as delivered by the caption source.
// Cues arrive in non-decreasing Start order and are never re-sorted here.
type Cue struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Segment is a fixed-width time bucket aggregating the cues that start
// inside it. End is always Start + segment length.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// BuildSegments buckets cues into segmentLength-second windows in a single
// left-to-right scan. A cue belongs to the bucket open when its start time is
// reached; the start-time-only test means a cue whose duration runs past the
// bucket end is still folded into that bucket whole, never split. Buckets
// that collected no cue are skipped: after a gap the next bucket is re-aligned
// to the global grid at floor(start/segmentLength)*segmentLength.
//
// Every appended cue text gets a leading space, including the first cue of a
// bucket, so each segment's Text starts with " ".
func BuildSegments(cues []Cue, segmentLength int) ([]Segment, error) {
	if segmentLength <= 0 {
		return nil, apperrors.Wrap(apperrors.CodeInvalidParams,
			"Segment length must be a positive number of seconds",
			fmt.Errorf("segment length %d", segmentLength))
	}

	length := float64(segmentLength)
	segments := make([]Segment, 0)
	current := Segment{Start: 0, End: length}

	for _, cue := range cues {
		if cue.Start < current.End {
			current.Text += " " + cue.Text
			continue
		}

		if current.Text != "" {
			segments = append(segments, current)
		}

		start := math.Floor(cue.Start/length) * length
		current = Segment{
			Start: start,
			End:   start + length,
			Text:  " " + cue.Text,
		}
	}

	if current.Text != "" {
		segments = append(segments, current)
	}

	return segments, nil
}
