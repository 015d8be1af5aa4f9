package persistence

import (
	"time"

	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/domain/firm"
)

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeVal(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// FirmMapper converts between firm.Firm and FirmModel.
type FirmMapper struct{}

// ToDomain converts a FirmModel to a firm.Firm.
func (FirmMapper) ToDomain(m FirmModel) firm.Firm {
	return firm.Reconstruct(
		m.ID,
		m.Name, m.Website, m.CareersURL, m.Description,
		m.IsQuantFirm,
		m.CreatedAt, m.UpdatedAt,
	)
}

// ToModel converts a firm.Firm to a FirmModel.
func (FirmMapper) ToModel(f firm.Firm) FirmModel {
	return FirmModel{
		ID:          f.ID(),
		Name:        f.Name(),
		Website:     f.Website(),
		CareersURL:  f.CareersURL(),
		Description: f.Description(),
		IsQuantFirm: f.IsQuantFirm(),
		CreatedAt:   f.CreatedAt(),
		UpdatedAt:   f.UpdatedAt(),
	}
}

// EventMapper converts between content.Event and EventModel.
type EventMapper struct{}

// ToDomain converts an EventModel to a content.Event.
func (EventMapper) ToDomain(m EventModel) content.Event {
	return content.ReconstructEvent(
		m.ID, m.FirmID,
		m.Title, m.Description, m.EventURL,
		timeVal(m.EventDate),
		m.Location, m.SourceName,
		m.RequiresRegistration,
		m.RegistrationURL,
		m.Notified,
		m.CreatedAt, m.UpdatedAt,
	)
}

// ToModel converts a content.Event to an EventModel.
func (EventMapper) ToModel(e content.Event) EventModel {
	return EventModel{
		ID:                   e.ID(),
		FirmID:               e.FirmID(),
		Title:                e.Title(),
		Description:          e.Description(),
		EventURL:             e.EventURL(),
		EventDate:            timePtr(e.EventDate()),
		Location:             e.Location(),
		SourceName:           e.SourceName(),
		RequiresRegistration: e.RequiresRegistration(),
		RegistrationURL:      e.RegistrationURL(),
		Notified:             e.Notified(),
		CreatedAt:            e.CreatedAt(),
		UpdatedAt:            e.UpdatedAt(),
	}
}

// JobMapper converts between content.JobPosting and JobPostingModel.
type JobMapper struct{}

// ToDomain converts a JobPostingModel to a content.JobPosting.
func (JobMapper) ToDomain(m JobPostingModel) content.JobPosting {
	return content.ReconstructJobPosting(
		m.ID, m.FirmID,
		m.Title, m.Description, m.JobURL, m.Location, m.JobType,
		timeVal(m.PostedDate),
		m.IsRelevant, m.Notified,
		m.CreatedAt, m.UpdatedAt,
	)
}

// ToModel converts a content.JobPosting to a JobPostingModel.
func (JobMapper) ToModel(j content.JobPosting) JobPostingModel {
	return JobPostingModel{
		ID:          j.ID(),
		FirmID:      j.FirmID(),
		Title:       j.Title(),
		Description: j.Description(),
		JobURL:      j.JobURL(),
		Location:    j.Location(),
		JobType:     j.JobType(),
		PostedDate:  timePtr(j.PostedDate()),
		IsRelevant:  j.IsRelevant(),
		Notified:    j.Notified(),
		CreatedAt:   j.CreatedAt(),
		UpdatedAt:   j.UpdatedAt(),
	}
}

// BlogMapper converts between content.BlogPost and BlogPostModel.
type BlogMapper struct{}

// ToDomain converts a BlogPostModel to a content.BlogPost.
func (BlogMapper) ToDomain(m BlogPostModel) content.BlogPost {
	return content.ReconstructBlogPost(
		m.ID, m.FirmID,
		m.Title, m.URL, m.Author,
		timeVal(m.PublishedDate),
		m.Summary, m.ContentFile, m.Tags,
		m.IsTechnical, m.Notified,
		m.CreatedAt, m.UpdatedAt,
	)
}

// ToModel converts a content.BlogPost to a BlogPostModel.
func (BlogMapper) ToModel(b content.BlogPost) BlogPostModel {
	return BlogPostModel{
		ID:            b.ID(),
		FirmID:        b.FirmID(),
		Title:         b.Title(),
		URL:           b.URL(),
		Author:        b.Author(),
		PublishedDate: timePtr(b.PublishedDate()),
		Summary:       b.Summary(),
		ContentFile:   b.ContentFile(),
		Tags:          content.JoinTags(b.Tags()),
		IsTechnical:   b.IsTechnical(),
		Notified:      b.Notified(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

// ReportMapper converts between content.InvestorReport and InvestorReportModel.
type ReportMapper struct{}

// ToDomain converts an InvestorReportModel to a content.InvestorReport.
func (ReportMapper) ToDomain(m InvestorReportModel) content.InvestorReport {
	return content.ReconstructInvestorReport(
		m.ID, m.FirmID,
		m.Title, m.URL, m.ReportType,
		timeVal(m.ReportDate),
		m.FilePath, m.Summary, m.KeyMetrics,
		m.Notified,
		m.CreatedAt, m.UpdatedAt,
	)
}

// ToModel converts a content.InvestorReport to an InvestorReportModel.
func (ReportMapper) ToModel(r content.InvestorReport) InvestorReportModel {
	return InvestorReportModel{
		ID:         r.ID(),
		FirmID:     r.FirmID(),
		Title:      r.Title(),
		URL:        r.URL(),
		ReportType: r.Type().String(),
		ReportDate: timePtr(r.ReportDate()),
		FilePath:   r.FilePath(),
		Summary:    r.Summary(),
		KeyMetrics: r.KeyMetrics(),
		Notified:   r.Notified(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

// VideoMapper converts between content.VideoContent and VideoContentModel.
type VideoMapper struct{}

// ToDomain converts a VideoContentModel to a content.VideoContent.
func (VideoMapper) ToDomain(m VideoContentModel) content.VideoContent {
	return content.ReconstructVideoContent(
		m.ID, m.FirmID,
		m.Title, m.URL, m.Platform, m.VideoID,
		timeVal(m.PublishedDate),
		m.Duration,
		m.TranscriptFile, m.Summary, m.Speakers, m.Topics,
		m.Notified,
		m.CreatedAt, m.UpdatedAt,
	)
}

// ToModel converts a content.VideoContent to a VideoContentModel.
func (VideoMapper) ToModel(v content.VideoContent) VideoContentModel {
	return VideoContentModel{
		ID:             v.ID(),
		FirmID:         v.FirmID(),
		Title:          v.Title(),
		URL:            v.URL(),
		Platform:       v.Platform(),
		VideoID:        v.VideoID(),
		PublishedDate:  timePtr(v.PublishedDate()),
		Duration:       v.Duration(),
		TranscriptFile: v.TranscriptFile(),
		Summary:        v.Summary(),
		Speakers:       content.JoinTags(v.Speakers()),
		Topics:         content.JoinTags(v.Topics()),
		Notified:       v.Notified(),
		CreatedAt:      v.CreatedAt(),
		UpdatedAt:      v.UpdatedAt(),
	}
}

// ScrapeLogMapper converts between content.ScrapeLog and ScrapeLogModel.
type ScrapeLogMapper struct{}

// ToDomain converts a ScrapeLogModel to a content.ScrapeLog.
func (ScrapeLogMapper) ToDomain(m ScrapeLogModel) content.ScrapeLog {
	return content.ReconstructScrapeLog(
		m.ID,
		m.SourceName, m.SourceURL, m.ScrapeType,
		m.Success,
		m.EventsFound, m.JobsFound,
		m.ErrorMessage,
		m.ScrapedAt,
	)
}

// ToModel converts a content.ScrapeLog to a ScrapeLogModel.
func (ScrapeLogMapper) ToModel(l content.ScrapeLog) ScrapeLogModel {
	return ScrapeLogModel{
		ID:           l.ID(),
		SourceName:   l.SourceName(),
		SourceURL:    l.SourceURL(),
		ScrapeType:   string(l.Type()),
		Success:      l.Success(),
		EventsFound:  l.EventsFound(),
		JobsFound:    l.JobsFound(),
		ErrorMessage: l.ErrorMessage(),
		ScrapedAt:    l.ScrapedAt(),
	}
}
