// Package persistence provides database storage implementations.
package persistence

import "time"

// FirmModel represents a tracked firm in the database. The association
// fields exist so AutoMigrate emits foreign keys on the content tables;
// deleting a firm cascades to everything it produced.
type FirmModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;uniqueIndex;size:255;not null"`
	Website     string    `gorm:"column:website;size:500"`
	CareersURL  string    `gorm:"column:careers_url;size:500"`
	Description string    `gorm:"column:description;type:text"`
	IsQuantFirm bool      `gorm:"column:is_quant_firm;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`

	Events    []EventModel          `gorm:"foreignKey:FirmID;constraint:OnDelete:CASCADE"`
	Jobs      []JobPostingModel     `gorm:"foreignKey:FirmID;constraint:OnDelete:CASCADE"`
	BlogPosts []BlogPostModel       `gorm:"foreignKey:FirmID;constraint:OnDelete:CASCADE"`
	Reports   []InvestorReportModel `gorm:"foreignKey:FirmID;constraint:OnDelete:CASCADE"`
	Videos    []VideoContentModel   `gorm:"foreignKey:FirmID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name.
func (FirmModel) TableName() string {
	return "firms"
}

// EventModel represents a campus or firm event in the database.
// The (firm_id, title) pair is the dedup identity.
type EventModel struct {
	ID                   int64      `gorm:"primaryKey;autoIncrement"`
	FirmID               int64      `gorm:"column:firm_id;index;not null;uniqueIndex:idx_events_firm_title"`
	Title                string     `gorm:"column:title;size:500;not null;uniqueIndex:idx_events_firm_title"`
	Description          string     `gorm:"column:description;type:text"`
	EventURL             string     `gorm:"column:event_url;size:500"`
	EventDate            *time.Time `gorm:"column:event_date;index"`
	Location             string     `gorm:"column:location;size:255"`
	SourceName           string     `gorm:"column:source_name;size:500"`
	RequiresRegistration bool       `gorm:"column:requires_registration;default:false"`
	RegistrationURL      string     `gorm:"column:registration_url;size:500"`
	Notified             bool       `gorm:"column:notified;default:false;index"`
	CreatedAt            time.Time  `gorm:"column:created_at"`
	UpdatedAt            time.Time  `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (EventModel) TableName() string {
	return "events"
}

// JobPostingModel represents a job posting in the database.
type JobPostingModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	FirmID      int64      `gorm:"column:firm_id;index;not null"`
	Title       string     `gorm:"column:title;size:500;not null"`
	Description string     `gorm:"column:description;type:text"`
	JobURL      string     `gorm:"column:job_url;uniqueIndex;size:500;not null"`
	Location    string     `gorm:"column:location;size:255"`
	JobType     string     `gorm:"column:job_type;size:100"`
	PostedDate  *time.Time `gorm:"column:posted_date"`
	IsRelevant  bool       `gorm:"column:is_relevant;default:true"`
	Notified    bool       `gorm:"column:notified;default:false;index"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (JobPostingModel) TableName() string {
	return "job_postings"
}

// BlogPostModel represents a blog post in the database.
type BlogPostModel struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	FirmID        int64      `gorm:"column:firm_id;index;not null"`
	Title         string     `gorm:"column:title;size:500;not null"`
	URL           string     `gorm:"column:url;uniqueIndex;size:500;not null"`
	Author        string     `gorm:"column:author;size:255"`
	PublishedDate *time.Time `gorm:"column:published_date"`
	Summary       string     `gorm:"column:summary;type:text"`
	ContentFile   string     `gorm:"column:content_file;size:500"`
	Tags          string     `gorm:"column:tags;size:500"`
	IsTechnical   bool       `gorm:"column:is_technical;default:false"`
	Notified      bool       `gorm:"column:notified;default:false;index"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// InvestorReportModel represents an investor report in the database.
type InvestorReportModel struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	FirmID     int64      `gorm:"column:firm_id;index;not null"`
	Title      string     `gorm:"column:title;size:500;not null"`
	URL        string     `gorm:"column:url;uniqueIndex;size:500;not null"`
	ReportType string     `gorm:"column:report_type;size:50"`
	ReportDate *time.Time `gorm:"column:report_date"`
	FilePath   string     `gorm:"column:file_path;size:500"`
	Summary    string     `gorm:"column:summary;type:text"`
	KeyMetrics string     `gorm:"column:key_metrics;type:text"`
	Notified   bool       `gorm:"column:notified;default:false;index"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (InvestorReportModel) TableName() string {
	return "investor_reports"
}

// VideoContentModel represents a video in the database.
type VideoContentModel struct {
	ID             int64      `gorm:"primaryKey;autoIncrement"`
	FirmID         int64      `gorm:"column:firm_id;index;not null"`
	Title          string     `gorm:"column:title;size:500;not null"`
	URL            string     `gorm:"column:url;uniqueIndex;size:500;not null"`
	Platform       string     `gorm:"column:platform;size:50"`
	VideoID        string     `gorm:"column:video_id;size:100"`
	PublishedDate  *time.Time `gorm:"column:published_date"`
	Duration       int        `gorm:"column:duration;default:0"`
	TranscriptFile string     `gorm:"column:transcript_file;size:500"`
	Summary        string     `gorm:"column:summary;type:text"`
	Speakers       string     `gorm:"column:speakers;size:500"`
	Topics         string     `gorm:"column:topics;size:500"`
	Notified       bool       `gorm:"column:notified;default:false;index"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (VideoContentModel) TableName() string {
	return "video_content"
}

// ScrapeLogModel represents one scrape attempt in the audit log.
type ScrapeLogModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	SourceName   string    `gorm:"column:source_name;index;size:255;not null"`
	SourceURL    string    `gorm:"column:source_url;size:500"`
	ScrapeType   string    `gorm:"column:scrape_type;size:50"`
	Success      bool      `gorm:"column:success;default:true"`
	EventsFound  int       `gorm:"column:events_found;default:0"`
	JobsFound    int       `gorm:"column:jobs_found;default:0"`
	ErrorMessage string    `gorm:"column:error_message;type:text"`
	ScrapedAt    time.Time `gorm:"column:scraped_at;index"`
}

// TableName returns the table name.
func (ScrapeLogModel) TableName() string {
	return "scrape_logs"
}
