package firm

import "time"

// Firm represents a tracked quantitative-finance company. Firms are
// created lazily the first time any content references them.
type Firm struct {
	id          int64
	name        string
	website     string
	careersURL  string
	description string
	isQuantFirm bool
	createdAt   time.Time
	updatedAt   time.Time
}

// New creates a Firm with the given name. Every firm starts flagged as
// a quant firm; callers clear the flag for generic placeholders.
func New(name string) Firm {
	now := time.Now()
	return Firm{
		name:        name,
		isQuantFirm: true,
		createdAt:   now,
		updatedAt:   now,
	}
}

// Reconstruct rebuilds a Firm from persistence.
func Reconstruct(
	id int64,
	name, website, careersURL, description string,
	isQuantFirm bool,
	createdAt, updatedAt time.Time,
) Firm {
	return Firm{
		id:          id,
		name:        name,
		website:     website,
		careersURL:  careersURL,
		description: description,
		isQuantFirm: isQuantFirm,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the database identity (0 before first save).
func (f Firm) ID() int64 { return f.id }

// Name returns the firm name, the natural key.
func (f Firm) Name() string { return f.name }

// Website returns the firm website.
func (f Firm) Website() string { return f.website }

// CareersURL returns the firm careers page.
func (f Firm) CareersURL() string { return f.careersURL }

// Description returns the firm description.
func (f Firm) Description() string { return f.description }

// IsQuantFirm reports whether this is a real tracked firm rather than
// a generic placeholder.
func (f Firm) IsQuantFirm() bool { return f.isQuantFirm }

// CreatedAt returns the creation time.
func (f Firm) CreatedAt() time.Time { return f.createdAt }

// UpdatedAt returns the last update time.
func (f Firm) UpdatedAt() time.Time { return f.updatedAt }

// WithWebsite returns a copy with the website set.
func (f Firm) WithWebsite(url string) Firm {
	f.website = url
	return f
}

// WithCareersURL returns a copy with the careers page set.
func (f Firm) WithCareersURL(url string) Firm {
	f.careersURL = url
	return f
}

// WithDescription returns a copy with the description set.
func (f Firm) WithDescription(desc string) Firm {
	f.description = desc
	return f
}

// WithQuantFlag returns a copy with the quant-firm flag set.
func (f Firm) WithQuantFlag(v bool) Firm {
	f.isQuantFirm = v
	return f
}
