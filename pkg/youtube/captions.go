package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	apperrors "ytscribe/pkg/errors"
	"ytscribe/pkg/segment"
)

const defaultWatchBase = "https://www.youtube.com"

// CaptionClient fetches caption tracks for a video. The track list is scraped
// from the watch page, the cues themselves come from the timedtext endpoint
// each track points at.
type CaptionClient struct {
	client    *resty.Client
	watchBase string
}

func NewCaptionClient(proxy string) *CaptionClient {
	client := resty.New().SetTimeout(30 * time.Second)
	if proxy != "" {
		client.SetProxy(proxy)
	}
	return &CaptionClient{
		client:    client,
		watchBase: defaultWatchBase,
	}
}

// Track describes one available caption track.
type Track struct {
	BaseURL        string
	LanguageCode   string
	Name           string
	IsGenerated    bool
	IsTranslatable bool
}

type captionsPayload struct {
	Renderer struct {
		CaptionTracks []struct {
			BaseURL string `json:"baseUrl"`
			Name    struct {
				SimpleText string `json:"simpleText"`
			} `json:"name"`
			LanguageCode   string `json:"languageCode"`
			Kind           string `json:"kind"`
			IsTranslatable bool   `json:"isTranslatable"`
		} `json:"captionTracks"`
	} `json:"playerCaptionsTracklistRenderer"`
}

// ListTracks returns the caption tracks available for a video. A watch page
// without a captions section means captions are disabled for the video.
func (c *CaptionClient) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("v", videoID).
		Get(c.watchBase + "/watch")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUpstreamAPI, "Failed to load watch page", err)
	}
	if resp.IsError() {
		return nil, apperrors.WrapWithDetail(apperrors.CodeUpstreamAPI, "Failed to load watch page",
			fmt.Sprintf("video %s status %d", videoID, resp.StatusCode()), nil)
	}

	captionsJSON, ok := extractCaptionsJSON(resp.String())
	if !ok {
		return nil, apperrors.WrapWithDetail(apperrors.CodeCaptionsDisabled,
			"Captions are disabled for this video", "video "+videoID, nil)
	}

	var payload captionsPayload
	if err := json.Unmarshal([]byte(captionsJSON), &payload); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUpstreamAPI, "Failed to parse caption track list", err)
	}

	if len(payload.Renderer.CaptionTracks) == 0 {
		return nil, apperrors.WrapWithDetail(apperrors.CodeCaptionsDisabled,
			"Captions are disabled for this video", "video "+videoID, nil)
	}

	tracks := make([]Track, 0, len(payload.Renderer.CaptionTracks))
	for _, raw := range payload.Renderer.CaptionTracks {
		tracks = append(tracks, Track{
			BaseURL:        raw.BaseURL,
			LanguageCode:   raw.LanguageCode,
			Name:           raw.Name.SimpleText,
			IsGenerated:    raw.Kind == "asr",
			IsTranslatable: raw.IsTranslatable,
		})
	}
	return tracks, nil
}

// extractCaptionsJSON cuts the balanced JSON object following "captions":
// out of the watch page HTML.
func extractCaptionsJSON(page string) (string, bool) {
	markerIndex := strings.Index(page, `"captions":`)
	if markerIndex == -1 {
		return "", false
	}

	jsonStart := strings.Index(page[markerIndex:], "{")
	if jsonStart == -1 {
		return "", false
	}
	jsonStart += markerIndex

	braceCount := 0
	for i := jsonStart; i < len(page); i++ {
		switch page[i] {
		case '{':
			braceCount++
		case '}':
			braceCount--
			if braceCount == 0 {
				return page[jsonStart : i+1], true
			}
		}
	}
	return "", false
}

type timedTextResponse struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start float64 `xml:"start,attr"`
		Dur   float64 `xml:"dur,attr"`
		Text  string  `xml:",chardata"`
	} `xml:"text"`
}

// FetchCues downloads one track's cues. A non-empty translateTo requests
// server-side translation of the track into that language.
func (c *CaptionClient) FetchCues(ctx context.Context, track Track, translateTo string) ([]segment.Cue, error) {
	request := c.client.R().SetContext(ctx)
	if translateTo != "" {
		request.SetQueryParam("tlang", translateTo)
	}

	resp, err := request.Get(track.BaseURL)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUpstreamAPI, "Failed to fetch caption track", err)
	}
	if resp.IsError() {
		return nil, apperrors.WrapWithDetail(apperrors.CodeUpstreamAPI, "Failed to fetch caption track",
			fmt.Sprintf("status %d", resp.StatusCode()), nil)
	}

	var timedText timedTextResponse
	if err := xml.Unmarshal(resp.Body(), &timedText); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUpstreamAPI, "Failed to parse caption track", err)
	}

	cues := make([]segment.Cue, 0, len(timedText.Texts))
	for _, text := range timedText.Texts {
		cues = append(cues, segment.Cue{
			Text:     html.UnescapeString(text.Text),
			Start:    text.Start,
			Duration: text.Dur,
		})
	}
	return cues, nil
}

// GetTranscript fetches the cues for a video in the requested language.
// Language matching tries an exact code first, then a prefix match so "en"
// finds "en-US". When the language is missing and translate is set, the first
// translatable track is fetched with server-side translation instead; without
// translate the miss is a CaptionNotFound error naming the language.
func (c *CaptionClient) GetTranscript(ctx context.Context, videoID, language string, translate bool) ([]segment.Cue, error) {
	tracks, err := c.ListTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if track, ok := findTrack(tracks, language); ok {
		return c.FetchCues(ctx, track, "")
	}

	if !translate {
		return nil, apperrors.WrapWithDetail(apperrors.CodeCaptionNotFound,
			"No caption track for requested language", "language "+language, nil)
	}

	source := tracks[0]
	for _, track := range tracks {
		if track.IsTranslatable {
			source = track
			break
		}
	}
	return c.FetchCues(ctx, source, language)
}

func findTrack(tracks []Track, language string) (Track, bool) {
	for _, track := range tracks {
		if track.LanguageCode == language {
			return track, true
		}
	}
	for _, track := range tracks {
		if strings.HasPrefix(track.LanguageCode, language) {
			return track, true
		}
	}
	return Track{}, false
}
