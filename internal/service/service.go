package service

import (
	"ytscribe/config"
	"ytscribe/internal/types"
	"ytscribe/pkg/youtube"
)

// Defaults applied when tool requests omit the corresponding field. The
// language default matches the caption tracks this tool was built around;
// the segment length is the agent-facing default (the CLI exposes its own).
const (
	DefaultLanguage      = "ja"
	DefaultSegmentLength = 30
)

type Service struct {
	Captions types.CaptionSource
	Searcher types.Searcher
}

func NewService() *Service {
	return &Service{
		Captions: youtube.NewCaptionClient(config.Conf.App.Proxy),
		Searcher: youtube.NewSearchClient(config.Conf.Youtube.APIKey, config.Conf.App.Proxy),
	}
}
