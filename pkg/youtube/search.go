package youtube

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"

	apperrors "ytscribe/pkg/errors"
)

const (
	defaultSearchBase = "https://www.googleapis.com/youtube/v3"

	// search.list caps maxResults at 50
	maxResultsCap     = 50
	defaultMaxResults = 10

	DefaultOrder         = "relevance"
	DefaultCaptionFilter = "closedCaption"
)

var (
	validOrders = map[string]bool{
		"date": true, "rating": true, "relevance": true, "title": true, "viewCount": true,
	}
	validCaptionFilters = map[string]bool{
		"closedCaption": true, "none": true, "any": true,
	}
)

// SearchClient queries the Data API v3 search endpoint. The API key is passed
// in explicitly, there is no ambient credential state.
type SearchClient struct {
	client *resty.Client
	apiKey string
}

func NewSearchClient(apiKey, proxy string) *SearchClient {
	client := resty.New().
		SetBaseURL(defaultSearchBase).
		SetTimeout(15 * time.Second)
	if proxy != "" {
		client.SetProxy(proxy)
	}
	return &SearchClient{
		client: client,
		apiKey: apiKey,
	}
}

// SearchParams are the optional knobs of a search; zero values fall back to
// the defaults (10 results, relevance order, closedCaption filter).
type SearchParams struct {
	MaxResults    int
	Order         string
	RegionCode    string
	CaptionFilter string
	PageToken     string
}

// Video is one search hit.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	PublishedAt  string `json:"published_at"`
	ChannelID    string `json:"channel_id"`
	ChannelTitle string `json:"channel_title"`
	ThumbnailURL string `json:"thumbnail_url"`
	VideoURL     string `json:"video_url"`
}

type searchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		PublishedAt string `json:"publishedAt"`
		ChannelID   string `json:"channelId"`
		ChannelTitle string `json:"channelTitle"`
		Thumbnails  struct {
			High struct {
				URL string `json:"url"`
			} `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
}

type searchResponse struct {
	NextPageToken string       `json:"nextPageToken"`
	Items         []searchItem `json:"items"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Search runs a keyword video search and returns the hits plus the token for
// the next page ("" when no further pages exist). Passing PageToken fetches
// a continuation of an earlier search.
func (c *SearchClient) Search(ctx context.Context, query string, params SearchParams) ([]Video, string, error) {
	if query == "" {
		return nil, "", apperrors.New(apperrors.CodeInvalidParams, "Search query must not be empty")
	}

	maxResults := params.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if maxResults > maxResultsCap {
		maxResults = maxResultsCap
	}

	order := params.Order
	if order == "" {
		order = DefaultOrder
	}
	if !validOrders[order] {
		return nil, "", apperrors.WrapWithDetail(apperrors.CodeInvalidParams,
			"Invalid sort order", order, nil)
	}

	captionFilter := params.CaptionFilter
	if captionFilter == "" {
		captionFilter = DefaultCaptionFilter
	}
	if !validCaptionFilters[captionFilter] {
		return nil, "", apperrors.WrapWithDetail(apperrors.CodeInvalidParams,
			"Invalid caption filter", captionFilter, nil)
	}

	request := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":         "id,snippet",
			"q":            query,
			"maxResults":   strconv.Itoa(maxResults),
			"order":        order,
			"type":         "video",
			"videoCaption": captionFilter,
			"key":          c.apiKey,
		})
	if params.RegionCode != "" {
		request.SetQueryParam("regionCode", params.RegionCode)
	}
	if params.PageToken != "" {
		request.SetQueryParam("pageToken", params.PageToken)
	}

	var result searchResponse
	var apiError apiErrorResponse
	resp, err := request.SetResult(&result).SetError(&apiError).Get("/search")
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.CodeUpstreamAPI, "YouTube API request failed", err)
	}
	if resp.IsError() {
		detail := apiError.Error.Message
		if detail == "" {
			detail = fmt.Sprintf("status %d", resp.StatusCode())
		}
		return nil, "", apperrors.WrapWithDetail(apperrors.CodeUpstreamAPI,
			"YouTube API request failed", detail, nil)
	}

	videos := lo.Map(result.Items, func(item searchItem, _ int) Video {
		return Video{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			PublishedAt:  item.Snippet.PublishedAt,
			ChannelID:    item.Snippet.ChannelID,
			ChannelTitle: item.Snippet.ChannelTitle,
			ThumbnailURL: item.Snippet.Thumbnails.High.URL,
			VideoURL:     "https://www.youtube.com/watch?v=" + item.ID.VideoID,
		}
	})

	return videos, result.NextPageToken, nil
}
