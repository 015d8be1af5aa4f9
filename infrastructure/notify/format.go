package notify

import (
	"fmt"
	"strings"

	"github.com/quantwatch/quantwatch/domain/content"
)

// maxDescriptionLen caps description lines in digests.
const maxDescriptionLen = 200

func formatEvents(events []content.Event, firmNames map[int64]string) (string, string) {
	subject := fmt.Sprintf("QuantWatch: %d new event(s)", len(events))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d new campus event(s) related to quantitative finance:\n", len(events))
	for i, event := range events {
		fmt.Fprintf(&sb, "\n%d. %s\n", i+1, event.Title())
		writeFirmLine(&sb, firmNames, event.FirmID())
		if !event.EventDate().IsZero() {
			fmt.Fprintf(&sb, "   Date: %s\n", event.EventDate().Format("2006-01-02 15:04"))
		}
		if event.Location() != "" {
			fmt.Fprintf(&sb, "   Location: %s\n", event.Location())
		}
		writeDescription(&sb, event.Description())
		if event.RequiresRegistration() && event.RegistrationURL() != "" {
			fmt.Fprintf(&sb, "   Registration required: %s\n", event.RegistrationURL())
		} else if event.EventURL() != "" {
			fmt.Fprintf(&sb, "   URL: %s\n", event.EventURL())
		}
		fmt.Fprintf(&sb, "   Source: %s\n", event.SourceName())
	}
	return subject, sb.String()
}

func formatJobs(jobs []content.JobPosting, firmNames map[int64]string) (string, string) {
	subject := fmt.Sprintf("QuantWatch: %d new job posting(s)", len(jobs))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d new job posting(s) in quantitative finance:\n", len(jobs))
	for i, job := range jobs {
		fmt.Fprintf(&sb, "\n%d. %s\n", i+1, job.Title())
		writeFirmLine(&sb, firmNames, job.FirmID())
		if job.Location() != "" {
			fmt.Fprintf(&sb, "   Location: %s\n", job.Location())
		}
		if job.JobType() != "" {
			fmt.Fprintf(&sb, "   Type: %s\n", job.JobType())
		}
		if !job.PostedDate().IsZero() {
			fmt.Fprintf(&sb, "   Posted: %s\n", job.PostedDate().Format("2006-01-02"))
		}
		writeDescription(&sb, job.Description())
		fmt.Fprintf(&sb, "   Apply: %s\n", job.JobURL())
	}
	return subject, sb.String()
}

func formatBlogPosts(posts []content.BlogPost, firmNames map[int64]string) (string, string) {
	subject := fmt.Sprintf("QuantWatch: %d new blog post(s)", len(posts))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d new blog post(s) from tracked firms:\n", len(posts))
	for i, post := range posts {
		fmt.Fprintf(&sb, "\n%d. %s\n", i+1, post.Title())
		writeFirmLine(&sb, firmNames, post.FirmID())
		if post.Author() != "" {
			fmt.Fprintf(&sb, "   Author: %s\n", post.Author())
		}
		if !post.PublishedDate().IsZero() {
			fmt.Fprintf(&sb, "   Published: %s\n", post.PublishedDate().Format("2006-01-02"))
		}
		if post.IsTechnical() {
			sb.WriteString("   Technical content\n")
		}
		if tags := post.Tags(); len(tags) > 0 {
			fmt.Fprintf(&sb, "   Tags: %s\n", strings.Join(tags, ", "))
		}
		writeDescription(&sb, post.Summary())
		fmt.Fprintf(&sb, "   URL: %s\n", post.URL())
	}
	return subject, sb.String()
}

func formatReports(reports []content.InvestorReport, firmNames map[int64]string) (string, string) {
	subject := fmt.Sprintf("QuantWatch: %d new investor report(s)", len(reports))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d new investor report(s) from tracked firms:\n", len(reports))
	for i, report := range reports {
		fmt.Fprintf(&sb, "\n%d. %s\n", i+1, report.Title())
		writeFirmLine(&sb, firmNames, report.FirmID())
		fmt.Fprintf(&sb, "   Type: %s\n", report.Type())
		if !report.ReportDate().IsZero() {
			fmt.Fprintf(&sb, "   Period: %s\n", report.ReportDate().Format("2006-01-02"))
		}
		writeDescription(&sb, report.Summary())
		if report.KeyMetrics() != "" {
			fmt.Fprintf(&sb, "   Key metrics: %s\n", report.KeyMetrics())
		}
		fmt.Fprintf(&sb, "   URL: %s\n", report.URL())
	}
	return subject, sb.String()
}

func formatVideos(videos []content.VideoContent, firmNames map[int64]string) (string, string) {
	subject := fmt.Sprintf("QuantWatch: %d new video(s)", len(videos))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d new video(s) from tracked firms:\n", len(videos))
	for i, video := range videos {
		fmt.Fprintf(&sb, "\n%d. %s\n", i+1, video.Title())
		writeFirmLine(&sb, firmNames, video.FirmID())
		if !video.PublishedDate().IsZero() {
			fmt.Fprintf(&sb, "   Published: %s\n", video.PublishedDate().Format("2006-01-02"))
		}
		if speakers := video.Speakers(); len(speakers) > 0 {
			fmt.Fprintf(&sb, "   Speakers: %s\n", strings.Join(speakers, ", "))
		}
		if topics := video.Topics(); len(topics) > 0 {
			fmt.Fprintf(&sb, "   Topics: %s\n", strings.Join(topics, ", "))
		}
		writeDescription(&sb, video.Summary())
		fmt.Fprintf(&sb, "   URL: %s\n", video.URL())
	}
	return subject, sb.String()
}

func writeFirmLine(sb *strings.Builder, firmNames map[int64]string, firmID int64) {
	if name, ok := firmNames[firmID]; ok && name != "" {
		fmt.Fprintf(sb, "   Firm: %s\n", name)
	}
}

func writeDescription(sb *strings.Builder, text string) {
	if text == "" {
		return
	}
	if len(text) > maxDescriptionLen {
		text = text[:maxDescriptionLen] + "..."
	}
	fmt.Fprintf(sb, "   Description: %s\n", text)
}
