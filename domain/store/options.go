package store

import (
	"strings"
	"time"
)

// WithFirmID filters by the "firm_id" column.
func WithFirmID(id int64) Option {
	return WithCondition("firm_id", id)
}

// WithURL filters by the "url" column.
func WithURL(url string) Option {
	return WithCondition("url", url)
}

// WithName filters by the "name" column.
func WithName(name string) Option {
	return WithCondition("name", name)
}

// WithPending filters for rows that have not been notified yet.
func WithPending() Option {
	return WithCondition("notified", false)
}

// WithNotified filters by the "notified" column.
func WithNotified(v bool) Option {
	return WithCondition("notified", v)
}

// WithContentType filters by the "content_type" column.
func WithContentType(t string) Option {
	return WithCondition("content_type", t)
}

// WithCreatedSince filters rows created at or after the given time.
func WithCreatedSince(t time.Time) Option {
	return WithWhere("created_at >= ?", t)
}

// WithTitleContains filters rows whose title contains the substring,
// case-insensitively.
func WithTitleContains(s string) Option {
	return WithWhere("LOWER(title) LIKE ?", "%"+strings.ToLower(s)+"%")
}
