// Package dto defines the JSON shapes served by the v1 status API.
package dto

import "time"

// Firm is one tracked firm.
type Firm struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Website     string `json:"website,omitempty"`
	CareersURL  string `json:"careers_url,omitempty"`
	Description string `json:"description,omitempty"`
	IsQuantFirm bool   `json:"is_quant_firm"`
}

// FirmsResponse lists firms.
type FirmsResponse struct {
	Data []Firm `json:"data"`
}

// Item is one content record in cross-type search results.
type Item struct {
	Kind   string `json:"kind"`
	ID     int64  `json:"id"`
	FirmID int64  `json:"firm_id"`
	Title  string `json:"title"`
	URL    string `json:"url,omitempty"`
}

// SearchResponse lists matching content records.
type SearchResponse struct {
	Query string `json:"query"`
	Data  []Item `json:"data"`
}

// Event is one stored event.
type Event struct {
	ID                   int64      `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	EventURL             string     `json:"event_url,omitempty"`
	EventDate            *time.Time `json:"event_date,omitempty"`
	Location             string     `json:"location,omitempty"`
	SourceName           string     `json:"source_name,omitempty"`
	RequiresRegistration bool       `json:"requires_registration"`
	RegistrationURL      string     `json:"registration_url,omitempty"`
}

// EventsResponse lists one firm's events.
type EventsResponse struct {
	Firm string  `json:"firm"`
	Data []Event `json:"data"`
}

// ScrapeLog is one scrape audit entry.
type ScrapeLog struct {
	ID           int64     `json:"id"`
	SourceName   string    `json:"source_name"`
	SourceURL    string    `json:"source_url"`
	Type         string    `json:"type"`
	Success      bool      `json:"success"`
	EventsFound  int       `json:"events_found"`
	JobsFound    int       `json:"jobs_found"`
	ErrorMessage string    `json:"error_message,omitempty"`
	ScrapedAt    time.Time `json:"scraped_at"`
}

// ScrapesResponse lists recent scrape audit entries.
type ScrapesResponse struct {
	Data []ScrapeLog `json:"data"`
}
