package extractor

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// feedItem is the source-neutral view of one RSS or Atom entry.
type feedItem struct {
	Title     string
	Link      string
	Summary   string
	Content   string
	Author    string
	Published time.Time
	Tags      []string
	VideoID   string
}

type rssDoc struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Encoded     string   `xml:"encoded"`
	Creator     string   `xml:"creator"`
	Author      string   `xml:"author"`
	PubDate     string   `xml:"pubDate"`
	Categories  []string `xml:"category"`
}

type atomDoc struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title   string     `xml:"title"`
	Links   []atomLink `xml:"link"`
	Summary string     `xml:"summary"`
	Content string `xml:"content"`
	Author  struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Published  string         `xml:"published"`
	Updated    string         `xml:"updated"`
	VideoID    string         `xml:"videoId"`
	Categories []atomCategory `xml:"category"`
}

type atomLink struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

// parseFeed decodes an RSS 2.0 or Atom document into feed items.
func parseFeed(data []byte) ([]feedItem, error) {
	var rss rssDoc
	if err := xml.Unmarshal(data, &rss); err == nil && len(rss.Channel.Items) > 0 {
		items := make([]feedItem, 0, len(rss.Channel.Items))
		for _, it := range rss.Channel.Items {
			author := it.Author
			if it.Creator != "" {
				author = it.Creator
			}
			content := it.Encoded
			items = append(items, feedItem{
				Title:     it.Title,
				Link:      it.Link,
				Summary:   it.Description,
				Content:   content,
				Author:    author,
				Published: parseFeedTime(it.PubDate),
				Tags:      it.Categories,
			})
		}
		return items, nil
	}

	var atom atomDoc
	if err := xml.Unmarshal(data, &atom); err == nil && len(atom.Entries) > 0 {
		items := make([]feedItem, 0, len(atom.Entries))
		for _, e := range atom.Entries {
			published := e.Published
			if published == "" {
				published = e.Updated
			}
			tags := make([]string, 0, len(e.Categories))
			for _, c := range e.Categories {
				if c.Term != "" {
					tags = append(tags, c.Term)
				}
			}
			items = append(items, feedItem{
				Title:     e.Title,
				Link:      atomEntryLink(e),
				Summary:   e.Summary,
				Content:   e.Content,
				Author:    e.Author.Name,
				Published: parseFeedTime(published),
				Tags:      tags,
				VideoID:   e.VideoID,
			})
		}
		return items, nil
	}

	return nil, fmt.Errorf("not a recognizable RSS or Atom document")
}

func atomEntryLink(e atomEntry) string {
	for _, l := range e.Links {
		if l.Rel == "" || l.Rel == "alternate" {
			return l.Href
		}
	}
	if len(e.Links) > 0 {
		return e.Links[0].Href
	}
	return ""
}

// parseFeedTime accepts the timestamp formats seen in the wild on feed
// entries, returning the zero time for anything unparseable.
func parseFeedTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC1123Z,
		time.RFC1123,
		time.RFC3339,
		"Mon, 2 Jan 2006 15:04:05 -0700",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// isFeedURL reports whether a source URL points at a feed rather than a
// regular HTML page.
func isFeedURL(url string) bool {
	lower := strings.ToLower(url)
	return strings.Contains(lower, "/feed") || strings.Contains(lower, "/rss") || strings.HasSuffix(lower, ".xml")
}
