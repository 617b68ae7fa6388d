package service

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"ytscribe/internal/dto"
	"ytscribe/log"
	"ytscribe/pkg/segment"
	"ytscribe/pkg/youtube"
)

const (
	sampleCueCount     = 5
	sampleSegmentCount = 3
	textPreviewLimit   = 1000
)

// FetchTranscript resolves the video id, pulls the cue list and returns a
// summary payload: total line count, the first few cues and a truncated flat
// text preview.
func (s Service) FetchTranscript(ctx context.Context, req dto.GetTranscriptReq) (*dto.GetTranscriptResData, error) {
	videoID, err := youtube.ExtractVideoID(req.URL)
	if err != nil {
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = DefaultLanguage
	}

	cues, err := s.Captions.GetTranscript(ctx, videoID, language, req.Translate)
	if err != nil {
		log.GetLogger().Error("FetchTranscript caption fetch failed",
			zap.String("videoId", videoID), zap.String("language", language), zap.Error(err))
		return nil, err
	}

	text := segment.Render(cues, false)
	if runes := []rune(text); len(runes) > textPreviewLimit {
		text = string(runes[:textPreviewLimit]) + "...(truncated)..."
	}

	return &dto.GetTranscriptResData{
		VideoID:     videoID,
		Language:    language,
		TotalLines:  len(cues),
		SampleLines: lo.Slice(cues, 0, sampleCueCount),
		TextContent: text,
	}, nil
}

// FetchTranscriptSegments is FetchTranscript with the cues bucketed into
// fixed-length segments before sampling.
func (s Service) FetchTranscriptSegments(ctx context.Context, req dto.GetTranscriptSegmentsReq) (*dto.GetTranscriptSegmentsResData, error) {
	videoID, err := youtube.ExtractVideoID(req.URL)
	if err != nil {
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = DefaultLanguage
	}
	segmentLength := req.SegmentLength
	if segmentLength == 0 {
		segmentLength = DefaultSegmentLength
	}

	cues, err := s.Captions.GetTranscript(ctx, videoID, language, req.Translate)
	if err != nil {
		log.GetLogger().Error("FetchTranscriptSegments caption fetch failed",
			zap.String("videoId", videoID), zap.String("language", language), zap.Error(err))
		return nil, err
	}

	segments, err := segment.BuildSegments(cues, segmentLength)
	if err != nil {
		return nil, err
	}

	return &dto.GetTranscriptSegmentsResData{
		VideoID:        videoID,
		Language:       language,
		SegmentLength:  segmentLength,
		TotalSegments:  len(segments),
		SampleSegments: lo.Slice(segments, 0, sampleSegmentCount),
	}, nil
}
