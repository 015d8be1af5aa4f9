package firm

import (
	"regexp"
	"strings"
)

// Relevance thresholds. These are fixed policy constants, not tunables.
const (
	// QuantRelatedThreshold is the default keyword count for topical relevance.
	QuantRelatedThreshold = 2
	// JobRelatedThreshold is the keyword count that marks a job relevant
	// without an explicit role match.
	JobRelatedThreshold = 3
	// EventAcceptScore is the minimum relevance score an event needs.
	EventAcceptScore = 3
	// FirmMentionScore is the score contribution of a detected firm name.
	FirmMentionScore = 5
	// MaxKeywordScore caps the keyword-density score contribution.
	MaxKeywordScore = 5
	// MaxRelevanceScore is the score ceiling.
	MaxRelevanceScore = 10
)

// GenericFirmName is the placeholder for quant-related events with no
// identifiable firm.
const GenericFirmName = "Quantitative Finance Firm"

// registrationPhrases indicate an event needs signup.
var registrationPhrases = []string{
	"register", "registration", "rsvp", "sign up",
	"signup", "reserve", "reservation",
}

// Detector classifies free text against the firm registry using
// substring and whole-word heuristics. False positives and negatives
// are expected; this is a best-effort alerting filter, not a parser.
type Detector struct {
	firms        []string
	firmPatterns []*regexp.Regexp
	keywords     []string
	jobRoles     []string
}

// NewDetector creates a Detector over the given registry.
func NewDetector(registry *Registry) *Detector {
	firms := registry.Firms()
	patterns := make([]*regexp.Regexp, len(firms))
	for i, name := range firms {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
	}

	roles := registry.JobRoles()
	for i, role := range roles {
		roles[i] = strings.ToLower(role)
	}

	return &Detector{
		firms:        firms,
		firmPatterns: patterns,
		keywords:     registry.Keywords(),
		jobRoles:     roles,
	}
}

// DetectFirms returns every registry firm whose name appears in text as
// a case-insensitive whole word, in registry order. Overlapping names
// are all reported.
func (d *Detector) DetectFirms(text string) []string {
	var detected []string
	for i, pattern := range d.firmPatterns {
		if pattern.MatchString(text) {
			detected = append(detected, d.firms[i])
		}
	}
	return detected
}

// FirstFirm returns the first firm detected in text, or false if none.
func (d *Detector) FirstFirm(text string) (string, bool) {
	firms := d.DetectFirms(text)
	if len(firms) == 0 {
		return "", false
	}
	return firms[0], true
}

// IsQuantRelated reports whether at least threshold registry keywords
// appear as substrings in the lower-cased text, along with the raw
// match count.
func (d *Detector) IsQuantRelated(text string, threshold int) (bool, int) {
	lower := strings.ToLower(text)
	matches := 0
	for _, keyword := range d.keywords {
		if strings.Contains(lower, keyword) {
			matches++
		}
	}
	return matches >= threshold, matches
}

// IsRelevantJob reports whether a posting looks like a quant role: any
// known role phrase appears in title+description, or the combined text
// is quant related at the job threshold.
func (d *Detector) IsRelevantJob(title, description string) bool {
	combined := strings.ToLower(title + " " + description)

	for _, role := range d.jobRoles {
		if strings.Contains(combined, role) {
			return true
		}
	}

	related, _ := d.IsQuantRelated(combined, JobRelatedThreshold)
	return related
}

// ScoreEventRelevance scores an event 0..10: a detected firm is worth
// 5 points, keyword density up to 5 more.
func (d *Detector) ScoreEventRelevance(title, description string) int {
	combined := title + " " + description

	score := 0
	if len(d.DetectFirms(combined)) > 0 {
		score += FirmMentionScore
	}

	_, count := d.IsQuantRelated(combined, 0)
	if count > MaxKeywordScore {
		count = MaxKeywordScore
	}
	score += count

	if score > MaxRelevanceScore {
		score = MaxRelevanceScore
	}
	return score
}

// RequiresRegistration reports whether the text mentions signing up.
// A phrase directly preceded by a negation word ("no signup needed")
// does not count.
func (d *Detector) RequiresRegistration(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range registrationPhrases {
		for idx := 0; ; {
			pos := strings.Index(lower[idx:], phrase)
			if pos < 0 {
				break
			}
			pos += idx
			if !negatedAt(lower, pos) {
				return true
			}
			idx = pos + len(phrase)
		}
	}
	return false
}

// negatedAt reports whether the word immediately before offset pos is a
// negation.
func negatedAt(text string, pos int) bool {
	before := strings.TrimRight(text[:pos], " \t")
	for _, neg := range []string{"no", "not", "without"} {
		if before == neg || strings.HasSuffix(before, " "+neg) {
			return true
		}
	}
	return false
}
