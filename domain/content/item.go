package content

// Kind identifies the concrete content type behind an Item.
type Kind string

// Content kinds.
const (
	KindEvent  Kind = "event"
	KindJob    Kind = "job"
	KindBlog   Kind = "blog"
	KindReport Kind = "report"
	KindVideo  Kind = "video"
)

// Item is the uniform projection used when merging heterogeneous
// content records, such as cross-type search results.
type Item struct {
	kind   Kind
	id     int64
	firmID int64
	title  string
	url    string
}

// Kind returns the concrete content type.
func (i Item) Kind() Kind { return i.kind }

// ID returns the record's database identity.
func (i Item) ID() int64 { return i.id }

// FirmID returns the owning firm's identity.
func (i Item) FirmID() int64 { return i.firmID }

// Title returns the record title.
func (i Item) Title() string { return i.title }

// URL returns the record's primary URL, empty for URL-less events.
func (i Item) URL() string { return i.url }

// Item projects an Event.
func (e Event) Item() Item {
	return Item{kind: KindEvent, id: e.id, firmID: e.firmID, title: e.title, url: e.eventURL}
}

// Item projects a JobPosting.
func (j JobPosting) Item() Item {
	return Item{kind: KindJob, id: j.id, firmID: j.firmID, title: j.title, url: j.jobURL}
}

// Item projects a BlogPost.
func (b BlogPost) Item() Item {
	return Item{kind: KindBlog, id: b.id, firmID: b.firmID, title: b.title, url: b.url}
}

// Item projects an InvestorReport.
func (r InvestorReport) Item() Item {
	return Item{kind: KindReport, id: r.id, firmID: r.firmID, title: r.title, url: r.url}
}

// Item projects a VideoContent.
func (v VideoContent) Item() Item {
	return Item{kind: KindVideo, id: v.id, firmID: v.firmID, title: v.title, url: v.url}
}
