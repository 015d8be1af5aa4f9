package content

import "time"

// JobPosting represents a job listing from a firm's careers page.
// Dedup identity is the job URL, globally unique.
type JobPosting struct {
	id          int64
	firmID      int64
	title       string
	description string
	jobURL      string
	location    string
	jobType     string
	postedDate  time.Time
	isRelevant  bool
	notified    bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewJobPosting creates a JobPosting. A job URL is mandatory for
// acceptance; callers reject candidates without one before reaching
// this constructor. Postings start flagged relevant since the detector
// has already filtered them.
func NewJobPosting(firmID int64, title, jobURL string) JobPosting {
	now := time.Now()
	return JobPosting{
		firmID:     firmID,
		title:      title,
		jobURL:     jobURL,
		isRelevant: true,
		createdAt:  now,
		updatedAt:  now,
	}
}

// ReconstructJobPosting rebuilds a JobPosting from persistence.
func ReconstructJobPosting(
	id, firmID int64,
	title, description, jobURL, location, jobType string,
	postedDate time.Time,
	isRelevant, notified bool,
	createdAt, updatedAt time.Time,
) JobPosting {
	return JobPosting{
		id:          id,
		firmID:      firmID,
		title:       title,
		description: description,
		jobURL:      jobURL,
		location:    location,
		jobType:     jobType,
		postedDate:  postedDate,
		isRelevant:  isRelevant,
		notified:    notified,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the database identity (0 before first save).
func (j JobPosting) ID() int64 { return j.id }

// FirmID returns the owning firm's identity.
func (j JobPosting) FirmID() int64 { return j.firmID }

// Title returns the job title.
func (j JobPosting) Title() string { return j.title }

// Description returns the job description.
func (j JobPosting) Description() string { return j.description }

// JobURL returns the posting URL, the dedup identity.
func (j JobPosting) JobURL() string { return j.jobURL }

// Location returns the job location.
func (j JobPosting) Location() string { return j.location }

// JobType returns the employment type (full-time, internship, ...).
func (j JobPosting) JobType() string { return j.jobType }

// PostedDate returns the posting date (zero when unknown).
func (j JobPosting) PostedDate() time.Time { return j.postedDate }

// IsRelevant reports whether the detector accepted this posting.
func (j JobPosting) IsRelevant() bool { return j.isRelevant }

// Notified reports whether this posting has been announced.
func (j JobPosting) Notified() bool { return j.notified }

// CreatedAt returns the creation time.
func (j JobPosting) CreatedAt() time.Time { return j.createdAt }

// UpdatedAt returns the last update time.
func (j JobPosting) UpdatedAt() time.Time { return j.updatedAt }

// WithDescription returns a copy with the description set.
func (j JobPosting) WithDescription(desc string) JobPosting {
	j.description = desc
	return j
}

// WithLocation returns a copy with the location set.
func (j JobPosting) WithLocation(location string) JobPosting {
	j.location = location
	return j
}

// WithJobType returns a copy with the employment type set.
func (j JobPosting) WithJobType(jobType string) JobPosting {
	j.jobType = jobType
	return j
}

// WithPostedDate returns a copy with the posting date set.
func (j JobPosting) WithPostedDate(t time.Time) JobPosting {
	j.postedDate = t
	return j
}
