package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssSample = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Blog</title>
    <link>https://example.com</link>
    <item>
      <guid>tag:example.com,2025:post-1</guid>
      <title>First Post</title>
      <link>https://example.com/post-1</link>
      <description>A &lt;b&gt;short&lt;/b&gt; summary</description>
      <pubDate>Sun, 01 Jun 2025 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>No GUID Post</title>
      <link>https://example.com/post-2</link>
      <description>Second</description>
    </item>
  </channel>
</rss>`

const atomSample = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Example Atom</title>
  <link href="https://example.com/"/>
  <updated>2025-06-01T10:00:00Z</updated>
  <entry>
    <id>urn:uuid:1</id>
    <title>Atom Entry</title>
    <link href="https://example.com/atom-1"/>
    <author><name>Jo Writer</name></author>
    <updated>2025-06-01T09:00:00Z</updated>
    <content type="html">&lt;p&gt;body&lt;/p&gt;&lt;script&gt;alert(1)&lt;/script&gt;</content>
  </entry>
</feed>`

func TestParser_ParseRSS(t *testing.T) {
	p := NewParser()

	parsed, err := p.Parse(&Document{Body: []byte(rssSample)}, "https://example.com/feed.xml")
	require.NoError(t, err)

	assert.Equal(t, "Example Blog", parsed.Title)
	assert.Equal(t, "https://example.com", parsed.SiteURL)
	require.Len(t, parsed.Entries, 2)

	first := parsed.Entries[0]
	assert.Equal(t, "tag:example.com,2025:post-1", first.GUID)
	assert.Equal(t, "First Post", first.Title)
	assert.Equal(t, "A <b>short</b> summary", first.Summary)
	require.NotNil(t, first.Published)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), first.Published.UTC())

	second := parsed.Entries[1]
	assert.Equal(t, "https://example.com/post-2", second.GUID, "guid falls back to link")
	assert.Nil(t, second.Published, "missing date stays nil")
}

func TestParser_ParseAtom(t *testing.T) {
	p := NewParser()

	parsed, err := p.Parse(&Document{Body: []byte(atomSample)}, "https://example.com/atom.xml")
	require.NoError(t, err)

	assert.Equal(t, "Example Atom", parsed.Title)
	require.Len(t, parsed.Entries, 1)

	entry := parsed.Entries[0]
	assert.Equal(t, "urn:uuid:1", entry.GUID)
	assert.Equal(t, "Jo Writer", entry.Author)
	require.NotNil(t, entry.Published, "updated substitutes for a missing published date")
	assert.Contains(t, entry.Content, "<p>body</p>")
	assert.NotContains(t, entry.Content, "script", "markup is sanitized")
}

func TestParser_ParseHTMLFails(t *testing.T) {
	p := NewParser()

	html := `<!DOCTYPE html><html><head><title>Not a feed</title></head><body>hi</body></html>`
	_, err := p.Parse(&Document{Body: []byte(html)}, "https://example.com")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "https://example.com", perr.URL)
	assert.True(t, IsTransient(err))
}

func TestParser_ParseGarbageFails(t *testing.T) {
	p := NewParser()

	_, err := p.Parse(&Document{Body: []byte("not xml at all")}, "https://example.com/feed")
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}
