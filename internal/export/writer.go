// Package export writes cue and segment lists to disk.
package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	apperrors "ytscribe/pkg/errors"
)

// WriteJSON serializes v as two-space indented JSON with HTML escaping
// disabled, so non-ASCII caption text stays readable in the file.
func WriteJSON(path string, v any) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return apperrors.Wrap(apperrors.CodeFileWriteError, "Failed to encode JSON", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return apperrors.WrapWithDetail(apperrors.CodeFileWriteError, "Failed to write file", path, err)
	}
	return nil
}

// WriteText writes rendered text output.
func WriteText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return apperrors.WrapWithDetail(apperrors.CodeFileWriteError, "Failed to write file", path, err)
	}
	return nil
}

// TextSibling swaps path's extension for .txt; a path without an extension
// just gets .txt appended.
func TextSibling(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".txt"
}
