package service

import (
	"context"

	"go.uber.org/zap"

	"ytscribe/internal/dto"
	"ytscribe/log"
	"ytscribe/pkg/youtube"
)

// SearchVideos runs a keyword search through the search collaborator and
// passes the continuation token through untouched.
func (s Service) SearchVideos(ctx context.Context, req dto.SearchVideosReq) (*dto.SearchVideosResData, error) {
	videos, nextPageToken, err := s.Searcher.Search(ctx, req.Query, youtube.SearchParams{
		MaxResults:    req.MaxResults,
		Order:         req.Order,
		RegionCode:    req.RegionCode,
		CaptionFilter: req.CaptionFilter,
		PageToken:     req.PageToken,
	})
	if err != nil {
		log.GetLogger().Error("SearchVideos search failed", zap.String("query", req.Query), zap.Error(err))
		return nil, err
	}

	log.GetLogger().Info("SearchVideos completed",
		zap.String("query", req.Query),
		zap.Int("count", len(videos)),
		zap.Bool("hasNextPage", nextPageToken != ""))

	return &dto.SearchVideosResData{
		Videos:        videos,
		NextPageToken: nextPageToken,
	}, nil
}
