package dto

import (
	"ytscribe/pkg/segment"
	"ytscribe/pkg/youtube"
)

// GetTranscriptReq asks for a video's raw caption cues.
type GetTranscriptReq struct {
	URL       string `json:"url" binding:"required"`
	Language  string `json:"language"`
	Translate bool   `json:"translate"`
}

// GetTranscriptResData carries the cue count, a short sample and a truncated
// text preview rather than the full transcript, which can be very large.
type GetTranscriptResData struct {
	VideoID     string        `json:"video_id"`
	Language    string        `json:"language"`
	TotalLines  int           `json:"total_lines"`
	SampleLines []segment.Cue `json:"sample_lines"`
	TextContent string        `json:"text_content"`
}

// GetTranscriptSegmentsReq asks for a video's captions bucketed into
// fixed-length segments. SegmentLength 0 falls back to the 30s default.
type GetTranscriptSegmentsReq struct {
	URL           string `json:"url" binding:"required"`
	Language      string `json:"language"`
	SegmentLength int    `json:"segment_length"`
	Translate     bool   `json:"translate"`
}

type GetTranscriptSegmentsResData struct {
	VideoID        string            `json:"video_id"`
	Language       string            `json:"language"`
	SegmentLength  int               `json:"segment_length"`
	TotalSegments  int               `json:"total_segments"`
	SampleSegments []segment.Segment `json:"sample_segments"`
}

// SearchVideosReq mirrors the search collaborator's knobs.
type SearchVideosReq struct {
	Query         string `json:"query" binding:"required"`
	MaxResults    int    `json:"max_results"`
	Order         string `json:"order"`
	RegionCode    string `json:"region_code"`
	CaptionFilter string `json:"caption_filter"`
	PageToken     string `json:"page_token"`
}

type SearchVideosResData struct {
	Videos        []youtube.Video `json:"videos"`
	NextPageToken string          `json:"next_page_token,omitempty"`
}
