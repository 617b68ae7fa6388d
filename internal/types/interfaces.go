// Package types declares the collaborator interfaces the service layer is
// built against.
package types

import (
	"context"

	"ytscribe/pkg/segment"
	"ytscribe/pkg/youtube"
)

// CaptionSource supplies the ordered cue list for a video in a given
// language, optionally falling back to server-side translation.
type CaptionSource interface {
	GetTranscript(ctx context.Context, videoID, language string, translate bool) ([]segment.Cue, error)
}

// Searcher runs keyword video searches and pages through results.
type Searcher interface {
	Search(ctx context.Context, query string, params youtube.SearchParams) ([]youtube.Video, string, error)
}
