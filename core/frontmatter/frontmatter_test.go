package frontmatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 9, 23, 30, 0, 0, time.UTC)

func TestRender(t *testing.T) {
	got := Render(`The "Best" Page`, "https://fr.wikipedia.org/wiki/X", fixedNow)
	want := "---\n" +
		"title: \"The \\\"Best\\\" Page\"\n" +
		"source: https://fr.wikipedia.org/wiki/X\n" +
		"date: 2024-03-09\n" +
		"language: fr\n" +
		"---\n"
	assert.Equal(t, want, got)
}

func TestRenderLanguageDefault(t *testing.T) {
	for _, u := range []string{"https://example.com/wiki/X", "not a url", ""} {
		assert.Contains(t, Render("T", u, fixedNow), "\nlanguage: en\n", u)
	}
}

func TestRenderUsesUTCDate(t *testing.T) {
	tz := time.FixedZone("ahead", 5*60*60)
	local := time.Date(2024, time.March, 10, 2, 0, 0, 0, tz)
	assert.Contains(t, Render("T", "", local), "\ndate: 2024-03-09\n")
}

func TestParseRoundTrip(t *testing.T) {
	md := Render(`Say "hi"`, "https://de.wikipedia.org/wiki/Hallo", fixedNow) + "# Say \"hi\"\n"

	meta, ok, err := Parse(md)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Metadata{
		Title:    `Say "hi"`,
		Source:   "https://de.wikipedia.org/wiki/Hallo",
		Date:     "2024-03-09",
		Language: "de",
	}, meta)

	_, body, ok := Split(md)
	require.True(t, ok)
	assert.Equal(t, "# Say \"hi\"\n", body)
}

func TestParseWithoutHeader(t *testing.T) {
	meta, ok, err := Parse("# Title\n\n---\n")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Metadata{}, meta)
}

func TestParseUnescapedTitle(t *testing.T) {
	for _, title := range []string{`C:\Windows`, `Tab\tStop`, `Both \ and "quotes"`} {
		t.Run(title, func(t *testing.T) {
			md := Render(title, "https://en.wikipedia.org/wiki/X", fixedNow) + "# X\n"

			meta, ok, err := Parse(md)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, Metadata{
				Title:    title,
				Source:   "https://en.wikipedia.org/wiki/X",
				Date:     "2024-03-09",
				Language: "en",
			}, meta)
		})
	}
}

func TestParseUnreadableHeader(t *testing.T) {
	_, ok, err := Parse("---\njust text\n---\n# X\n")
	assert.True(t, ok)
	assert.Error(t, err)
}
