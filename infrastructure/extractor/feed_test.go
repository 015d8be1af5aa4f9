package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedRSS(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:dc="http://purl.org/dc/elements/1.1/">
<channel><title>Blog</title>
<item>
  <title>First Post</title>
  <link>https://example.com/first</link>
  <description>A short summary.</description>
  <content:encoded>&lt;p&gt;Full body.&lt;/p&gt;</content:encoded>
  <dc:creator>Jo Writer</dc:creator>
  <author>fallback@example.com</author>
  <pubDate>Mon, 02 Feb 2026 10:00:00 -0500</pubDate>
  <category>research</category>
  <category>markets</category>
</item>
</channel></rss>`)

	items, err := parseFeed(data)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "First Post", item.Title)
	assert.Equal(t, "https://example.com/first", item.Link)
	assert.Equal(t, "A short summary.", item.Summary)
	assert.Equal(t, "<p>Full body.</p>", item.Content)
	assert.Equal(t, "Jo Writer", item.Author)
	assert.Equal(t, []string{"research", "markets"}, item.Tags)
	assert.Equal(t, 2026, item.Published.Year())
	assert.Equal(t, time.February, item.Published.Month())
}

func TestParseFeedAtom(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
<title>Feed</title>
<entry>
  <title>Atom Entry</title>
  <link rel="self" href="https://example.com/entry.atom"/>
  <link rel="alternate" href="https://example.com/entry"/>
  <summary>Entry summary.</summary>
  <updated>2026-03-04T12:00:00Z</updated>
</entry>
</feed>`)

	items, err := parseFeed(data)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Atom Entry", items[0].Title)
	assert.Equal(t, "https://example.com/entry", items[0].Link)
	assert.Equal(t, "Entry summary.", items[0].Summary)
	assert.Equal(t, 2026, items[0].Published.Year())
}

func TestParseFeedRejectsGarbage(t *testing.T) {
	_, err := parseFeed([]byte("<html><body>not a feed</body></html>"))
	assert.Error(t, err)
}

func TestIsFeedURL(t *testing.T) {
	assert.True(t, isFeedURL("https://example.com/blog/feed"))
	assert.True(t, isFeedURL("https://example.com/rss"))
	assert.True(t, isFeedURL("https://example.com/updates.xml"))
	assert.False(t, isFeedURL("https://example.com/blog"))
}
