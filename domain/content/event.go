// Package content provides the domain entities for discovered content:
// events, job postings, blog posts, investor reports, videos, and the
// scrape audit log.
package content

import "time"

// Event represents a campus or firm event. Dedup identity is the
// (firm, title) pair: the same firm never stores two events with the
// same title, while different firms may share a title.
type Event struct {
	id                   int64
	firmID               int64
	title                string
	description          string
	eventURL             string
	eventDate            time.Time
	location             string
	sourceName           string
	requiresRegistration bool
	registrationURL      string
	notified             bool
	createdAt            time.Time
	updatedAt            time.Time
}

// NewEvent creates an Event for the given firm and title. All other
// fields are optional and set via the WithX methods.
func NewEvent(firmID int64, title string) Event {
	now := time.Now()
	return Event{
		firmID:    firmID,
		title:     title,
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstructEvent rebuilds an Event from persistence.
func ReconstructEvent(
	id, firmID int64,
	title, description, eventURL string,
	eventDate time.Time,
	location, sourceName string,
	requiresRegistration bool,
	registrationURL string,
	notified bool,
	createdAt, updatedAt time.Time,
) Event {
	return Event{
		id:                   id,
		firmID:               firmID,
		title:                title,
		description:          description,
		eventURL:             eventURL,
		eventDate:            eventDate,
		location:             location,
		sourceName:           sourceName,
		requiresRegistration: requiresRegistration,
		registrationURL:      registrationURL,
		notified:             notified,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// ID returns the database identity (0 before first save).
func (e Event) ID() int64 { return e.id }

// FirmID returns the owning firm's identity.
func (e Event) FirmID() int64 { return e.firmID }

// Title returns the event title.
func (e Event) Title() string { return e.title }

// Description returns the event description.
func (e Event) Description() string { return e.description }

// EventURL returns the event page URL.
func (e Event) EventURL() string { return e.eventURL }

// EventDate returns the event date (zero when unknown).
func (e Event) EventDate() time.Time { return e.eventDate }

// Location returns the event location.
func (e Event) Location() string { return e.location }

// SourceName returns the human-readable name of the scraping source.
func (e Event) SourceName() string { return e.sourceName }

// RequiresRegistration reports whether signup appears to be needed.
func (e Event) RequiresRegistration() bool { return e.requiresRegistration }

// RegistrationURL returns the signup URL.
func (e Event) RegistrationURL() string { return e.registrationURL }

// Notified reports whether this event has been announced.
func (e Event) Notified() bool { return e.notified }

// CreatedAt returns the creation time.
func (e Event) CreatedAt() time.Time { return e.createdAt }

// UpdatedAt returns the last update time.
func (e Event) UpdatedAt() time.Time { return e.updatedAt }

// WithDescription returns a copy with the description set.
func (e Event) WithDescription(desc string) Event {
	e.description = desc
	return e
}

// WithEventURL returns a copy with the event page URL set.
func (e Event) WithEventURL(url string) Event {
	e.eventURL = url
	return e
}

// WithEventDate returns a copy with the event date set.
func (e Event) WithEventDate(t time.Time) Event {
	e.eventDate = t
	return e
}

// WithLocation returns a copy with the location set.
func (e Event) WithLocation(location string) Event {
	e.location = location
	return e
}

// WithSourceName returns a copy with the scraping source name set.
func (e Event) WithSourceName(name string) Event {
	e.sourceName = name
	return e
}

// WithRegistration returns a copy with the registration flag and URL set.
func (e Event) WithRegistration(required bool, url string) Event {
	e.requiresRegistration = required
	e.registrationURL = url
	return e
}
