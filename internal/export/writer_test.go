package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"ytscribe/pkg/segment"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "captions.json")

	cues := []segment.Cue{
		{Text: "こんにちは & hello", Start: 0, Duration: 1.5},
	}

	err := WriteJSON(path, cues)
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	// Indented, non-ASCII and HTML-significant characters left unescaped
	content := string(data)
	assert.Contains(t, content, "  {")
	assert.Contains(t, content, "こんにちは & hello")
	assert.NotContains(t, content, "\\u0026")
	assert.NotContains(t, content, "\\u3053")
}

func TestWriteJSON_BadPath(t *testing.T) {
	err := WriteJSON(filepath.Join(t.TempDir(), "missing", "captions.json"), []segment.Cue{})
	assert.Error(t, err)
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "captions.txt")

	err := WriteText(path, "[00:00:00] hello")
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "[00:00:00] hello", string(data))
}

func TestTextSibling(t *testing.T) {
	assert.Equal(t, "captions.txt", TextSibling("captions.json"))
	assert.Equal(t, filepath.Join("out", "a.txt"), TextSibling(filepath.Join("out", "a.json")))
	assert.Equal(t, "noext.txt", TextSibling("noext"))
	assert.Equal(t, "double.tar.txt", TextSibling("double.tar.json"))
}
