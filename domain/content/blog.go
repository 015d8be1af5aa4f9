package content

import (
	"strings"
	"time"
)

// BlogPost represents an article from a firm's blog or insights page.
// Dedup identity is the URL, globally unique.
type BlogPost struct {
	id            int64
	firmID        int64
	title         string
	url           string
	author        string
	publishedDate time.Time
	summary       string
	contentFile   string
	tags          []string
	isTechnical   bool
	notified      bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBlogPost creates a BlogPost for the given firm, title, and URL.
func NewBlogPost(firmID int64, title, url string) BlogPost {
	now := time.Now()
	return BlogPost{
		firmID:    firmID,
		title:     title,
		url:       url,
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstructBlogPost rebuilds a BlogPost from persistence. Tags are
// stored comma-joined and split here.
func ReconstructBlogPost(
	id, firmID int64,
	title, url, author string,
	publishedDate time.Time,
	summary, contentFile, tags string,
	isTechnical, notified bool,
	createdAt, updatedAt time.Time,
) BlogPost {
	return BlogPost{
		id:            id,
		firmID:        firmID,
		title:         title,
		url:           url,
		author:        author,
		publishedDate: publishedDate,
		summary:       summary,
		contentFile:   contentFile,
		tags:          SplitTags(tags),
		isTechnical:   isTechnical,
		notified:      notified,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// SplitTags parses a comma-joined tag string into a list.
func SplitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// JoinTags serializes a tag list comma-joined for storage.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// ID returns the database identity (0 before first save).
func (b BlogPost) ID() int64 { return b.id }

// FirmID returns the owning firm's identity.
func (b BlogPost) FirmID() int64 { return b.firmID }

// Title returns the post title.
func (b BlogPost) Title() string { return b.title }

// URL returns the post URL, the dedup identity.
func (b BlogPost) URL() string { return b.url }

// Author returns the post author.
func (b BlogPost) Author() string { return b.author }

// PublishedDate returns the publication date (zero when unknown).
func (b BlogPost) PublishedDate() time.Time { return b.publishedDate }

// Summary returns the post summary or excerpt.
func (b BlogPost) Summary() string { return b.summary }

// ContentFile returns the relative path of the archived full text.
func (b BlogPost) ContentFile() string { return b.contentFile }

// Tags returns the post tags in original order.
func (b BlogPost) Tags() []string {
	result := make([]string, len(b.tags))
	copy(result, b.tags)
	return result
}

// IsTechnical reports whether the post looks like engineering content.
func (b BlogPost) IsTechnical() bool { return b.isTechnical }

// Notified reports whether this post has been announced.
func (b BlogPost) Notified() bool { return b.notified }

// CreatedAt returns the creation time.
func (b BlogPost) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last update time.
func (b BlogPost) UpdatedAt() time.Time { return b.updatedAt }

// WithAuthor returns a copy with the author set.
func (b BlogPost) WithAuthor(author string) BlogPost {
	b.author = author
	return b
}

// WithPublishedDate returns a copy with the publication date set.
func (b BlogPost) WithPublishedDate(t time.Time) BlogPost {
	b.publishedDate = t
	return b
}

// WithSummary returns a copy with the summary set.
func (b BlogPost) WithSummary(summary string) BlogPost {
	b.summary = summary
	return b
}

// WithContentFile returns a copy with the archived content path set.
func (b BlogPost) WithContentFile(path string) BlogPost {
	b.contentFile = path
	return b
}

// WithTags returns a copy with the tag list set.
func (b BlogPost) WithTags(tags []string) BlogPost {
	copied := make([]string, len(tags))
	copy(copied, tags)
	b.tags = copied
	return b
}

// WithTechnicalFlag returns a copy with the technical flag set.
func (b BlogPost) WithTechnicalFlag(v bool) BlogPost {
	b.isTechnical = v
	return b
}
