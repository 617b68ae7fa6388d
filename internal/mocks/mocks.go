// Package mocks provides mock implementations of core interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ytscribe/pkg/segment"
	"ytscribe/pkg/youtube"
)

// MockCaptionSource is a mock implementation of types.CaptionSource
type MockCaptionSource struct {
	mock.Mock
}

func (m *MockCaptionSource) GetTranscript(ctx context.Context, videoID, language string, translate bool) ([]segment.Cue, error) {
	args := m.Called(ctx, videoID, language, translate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]segment.Cue), args.Error(1)
}

// MockSearcher is a mock implementation of types.Searcher
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, query string, params youtube.SearchParams) ([]youtube.Video, string, error) {
	args := m.Called(ctx, query, params)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]youtube.Video), args.String(1), args.Error(2)
}
