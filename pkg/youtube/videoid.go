// Package youtube holds the clients for the YouTube surfaces the app talks
// to: the watch-page caption tracks, the timedtext endpoint and the Data API
// v3 search endpoint.
package youtube

import (
	"regexp"

	apperrors "ytscribe/pkg/errors"
)

var (
	// A bare video id: 11 characters of [A-Za-z0-9_-].
	bareVideoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

	// URL shapes: youtu.be/<id>, youtube.com/watch?v=<id>, /embed/<id>,
	// /v/<id>, /shorts/<id>, with optional scheme, subdomain and -nocookie.
	videoURLPattern = regexp.MustCompile(
		`(?i)(?:https?:)?(?://)?(?:[0-9A-Z-]+\.)?(?:youtu\.be/|youtube(?:-nocookie)?\.com\S*?[^\w\s-])` +
			`(?:watch\?v=|embed/|v/|shorts/)?([a-zA-Z0-9_-]{11})`)
)

// ExtractVideoID maps a YouTube URL or a bare video id to the 11-character
// video id.
func ExtractVideoID(urlOrID string) (string, error) {
	if bareVideoIDPattern.MatchString(urlOrID) {
		return urlOrID, nil
	}

	if match := videoURLPattern.FindStringSubmatch(urlOrID); match != nil {
		return match[1], nil
	}

	return "", apperrors.WrapWithDetail(apperrors.CodeInvalidParams,
		"Invalid YouTube URL or video ID", urlOrID, nil)
}
