package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "ytscribe/pkg/errors"
)

const timedTextXML = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0" dur="2.5">hello &amp; welcome</text>
  <text start="3.1" dur="1.2">second line</text>
</transcript>`

func newCaptionTestServer(t *testing.T) (*httptest.Server, *CaptionClient) {
	t.Helper()

	var server *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("v") {
		case "disabled0000":
			fmt.Fprint(w, `<html><body>no captions here</body></html>`)
		case "notracks0000":
			fmt.Fprint(w, `<html>"captions": {"playerCaptionsTracklistRenderer": {"captionTracks": []}}</html>`)
		default:
			fmt.Fprintf(w, `<html>"captions": {"playerCaptionsTracklistRenderer": {"captionTracks": [`+
				`{"baseUrl": "%[1]s/api/timedtext?lang=ja", "name": {"simpleText": "Japanese"}, "languageCode": "ja", "isTranslatable": true},`+
				`{"baseUrl": "%[1]s/api/timedtext?lang=en", "name": {"simpleText": "English (auto-generated)"}, "languageCode": "en", "kind": "asr", "isTranslatable": true}`+
				`]}}</html>`, server.URL)
		}
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, timedTextXML)
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewCaptionClient("")
	client.watchBase = server.URL
	return server, client
}

func TestListTracks(t *testing.T) {
	_, client := newCaptionTestServer(t)

	tracks, err := client.ListTracks(context.Background(), "videoid12345")
	assert.NoError(t, err)
	assert.Len(t, tracks, 2)

	assert.Equal(t, "ja", tracks[0].LanguageCode)
	assert.Equal(t, "Japanese", tracks[0].Name)
	assert.False(t, tracks[0].IsGenerated)
	assert.True(t, tracks[0].IsTranslatable)

	assert.Equal(t, "en", tracks[1].LanguageCode)
	assert.True(t, tracks[1].IsGenerated)
}

func TestListTracks_CaptionsDisabled(t *testing.T) {
	_, client := newCaptionTestServer(t)

	_, err := client.ListTracks(context.Background(), "disabled0000")
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeCaptionsDisabled))
}

func TestListTracks_EmptyTrackList(t *testing.T) {
	_, client := newCaptionTestServer(t)

	_, err := client.ListTracks(context.Background(), "notracks0000")
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeCaptionsDisabled))
}

func TestGetTranscript_ExactLanguage(t *testing.T) {
	_, client := newCaptionTestServer(t)

	cues, err := client.GetTranscript(context.Background(), "videoid12345", "ja", false)
	assert.NoError(t, err)
	assert.Len(t, cues, 2)

	// Entities decoded, times carried through
	assert.Equal(t, "hello & welcome", cues[0].Text)
	assert.Equal(t, 0.0, cues[0].Start)
	assert.Equal(t, 2.5, cues[0].Duration)
	assert.Equal(t, "second line", cues[1].Text)
	assert.Equal(t, 3.1, cues[1].Start)
}

func TestGetTranscript_LanguageMissingWithoutTranslate(t *testing.T) {
	_, client := newCaptionTestServer(t)

	_, err := client.GetTranscript(context.Background(), "videoid12345", "de", false)
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeCaptionNotFound))

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Detail, "de")
}

func TestGetTranscript_TranslateFallback(t *testing.T) {
	var server *httptest.Server
	var gotTlang string

	mux := http.NewServeMux()
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html>"captions": {"playerCaptionsTracklistRenderer": {"captionTracks": [`+
			`{"baseUrl": "%s/api/timedtext?lang=en", "name": {"simpleText": "English"}, "languageCode": "en", "isTranslatable": true}`+
			`]}}</html>`, server.URL)
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		gotTlang = r.URL.Query().Get("tlang")
		fmt.Fprint(w, timedTextXML)
	})
	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewCaptionClient("")
	client.watchBase = server.URL

	cues, err := client.GetTranscript(context.Background(), "videoid12345", "de", true)
	assert.NoError(t, err)
	assert.Len(t, cues, 2)
	assert.Equal(t, "de", gotTlang)
}

func TestFindTrack_PrefixMatch(t *testing.T) {
	tracks := []Track{
		{LanguageCode: "ja"},
		{LanguageCode: "en-US"},
	}

	track, ok := findTrack(tracks, "en")
	assert.True(t, ok)
	assert.Equal(t, "en-US", track.LanguageCode)

	_, ok = findTrack(tracks, "fr")
	assert.False(t, ok)
}
