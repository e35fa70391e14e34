package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	tests := map[string]string{
		"Go (programming language)": "go-programming-language",
		"C++":                       "c",
		"  Édith Piaf ":             "dith-piaf",
		"2024 in review":            "2024-in-review",
		"!!!":                       "article",
		"":                          "article",
	}
	for title, want := range tests {
		assert.Equal(t, want, Filename(title), title)
	}
}

func TestWriterWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("Hello World", []byte("# Hello World\n"), ".md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hello-world.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Hello World\n", string(data))
}
