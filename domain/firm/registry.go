// Package firm provides the tracked-firm registry, the relevance
// detector, and the firm domain entity.
package firm

import (
	"sort"
	"strings"
)

// Source identifies one external page or feed to scrape.
type Source struct {
	Name string
	URL  string
	RSS  string
}

// firmNames lists every tracked firm. Order matters: detection results
// follow this order, and overlapping names (such as "Citadel" and
// "Citadel Securities") are all reported.
var firmNames = []string{
	// Hedge funds
	"Citadel", "Citadel Securities", "Two Sigma", "Renaissance Technologies",
	"DE Shaw", "D. E. Shaw", "Jump Trading", "Jane Street", "Optiver",
	"IMC Trading", "Akuna Capital", "DRW", "Susquehanna International Group",
	"SIG", "Hudson River Trading", "HRT", "Tower Research", "Virtu Financial",
	"Wolverine Trading", "Old Mission", "Five Rings", "Radix Trading",
	"XR Trading", "Quantitative Investment Management", "QIM",

	// Investment banks, quant divisions
	"Goldman Sachs", "Morgan Stanley", "JP Morgan", "JPMorgan",
	"Bank of America", "Barclays", "Credit Suisse", "UBS",
	"Deutsche Bank", "Citi", "Citigroup",

	// Asset managers, quant divisions
	"BlackRock", "Vanguard", "State Street", "AQR Capital",
	"Bridgewater Associates", "Millennium Management",
	"Point72", "Winton Group", "Man Group", "Schonfeld",

	// Proprietary trading
	"Chicago Trading Company", "CTC", "Geneva Trading", "Belvedere Trading",
	"Allston Trading", "TransMarket Group", "TMG", "Peak6",
	"Headlands Tech", "Valkyrie Trading",

	// Market makers
	"Citadel Securities", "Virtu Financial", "Flow Traders",
	"GTS", "Global Trading Systems",

	// Crypto quant
	"Wintermute", "Alameda Research", "Jump Crypto", "Cumberland",

	// Fintech with a quant focus
	"Robinhood", "Bloomberg", "FactSet", "Refinitiv",
}

// topicKeywords indicate quantitative-finance content. Lower-cased firm
// names are appended at registry construction.
var topicKeywords = []string{
	// Job titles
	"quantitative", "quant", "trader", "trading", "systematic",
	"algorithmic", "algo", "market maker", "portfolio manager",
	"risk management", "derivatives", "fixed income",

	// Technical
	"machine learning", "ml", "data science", "statistics",
	"stochastic calculus", "time series", "optimization",
	"high frequency", "hft", "low latency",

	// Finance
	"equity", "options", "futures", "commodities",
	"forex", "rates", "credit", "volatility",
	"arbitrage", "alpha", "factor models",

	// Academic
	"financial engineering", "computational finance",
	"mathematical finance", "econometrics",
}

// jobRoles are role phrases that mark a posting as relevant on their own.
var jobRoles = []string{
	"quantitative researcher", "quant researcher", "qr",
	"quantitative trader", "quant trader", "trader",
	"quantitative developer", "quant developer", "quant dev",
	"quantitative analyst", "quant analyst",
	"research scientist", "research engineer",
	"data scientist", "ml engineer", "machine learning",
	"software engineer - trading", "trading systems",
	"portfolio manager", "portfolio analyst",
	"risk analyst", "risk manager",
	"derivatives analyst", "derivatives trader",
	"market maker", "systematic trader",
}

// campusEventSources are the default campus calendar pages.
var campusEventSources = []Source{
	{Name: "MIT CSAIL", URL: "https://www.csail.mit.edu/events"},
	{Name: "Stanford CS", URL: "https://cs.stanford.edu/events"},
	{Name: "CMU CS", URL: "https://www.cs.cmu.edu/calendar"},
	{Name: "Berkeley EECS", URL: "https://eecs.berkeley.edu/events"},
	{Name: "Princeton CS", URL: "https://www.cs.princeton.edu/events"},
}

// careersURLs maps firm name to its careers page.
var careersURLs = map[string]string{
	"Citadel":                        "https://www.citadel.com/careers/",
	"Two Sigma":                      "https://careers.twosigma.com/",
	"Jane Street":                    "https://www.janestreet.com/join-jane-street/",
	"Jump Trading":                   "https://www.jumptrading.com/careers/",
	"DE Shaw":                        "https://www.deshaw.com/careers",
	"Hudson River Trading":           "https://www.hudsonrivertrading.com/careers/",
	"Optiver":                        "https://optiver.com/working-at-optiver/career-opportunities/",
	"IMC Trading":                    "https://careers.imc.com/",
	"Akuna Capital":                  "https://akunacapital.com/careers",
	"DRW":                            "https://drw.com/careers/",
	"Susquehanna International Group": "https://sig.com/careers/",
	"Tower Research":                 "https://www.tower-research.com/careers",
	"Virtu Financial":                "https://www.virtu.com/careers/",
	"Old Mission":                    "https://www.oldmissioncapital.com/careers/",
	"Five Rings":                     "https://fiverings.com/careers/",
	"AQR Capital":                    "https://careers.aqr.com/",
	"Millennium":                     "https://www.mlp.com/careers/",
	"Point72":                        "https://careers.point72.com/",
}

// blogURLs maps firm name to its engineering or insights blog.
var blogURLs = map[string]string{
	"Citadel":                        "https://www.citadel.com/news/",
	"Two Sigma":                      "https://www.twosigma.com/articles/",
	"Jane Street":                    "https://blog.janestreet.com/",
	"Jump Trading":                   "https://www.jumptrading.com/insights/",
	"DE Shaw":                        "https://www.deshaw.com/insights",
	"Hudson River Trading":           "https://www.hudsonrivertrading.com/hrtbeat/",
	"Optiver":                        "https://optiver.com/insights/",
	"IMC Trading":                    "https://www.imc.com/us/insights/",
	"Akuna Capital":                  "https://akunacapital.com/news-and-insights",
	"DRW":                            "https://drw.com/insights/",
	"Susquehanna International Group": "https://sig.com/news-insights/",
	"Tower Research":                 "https://www.tower-research.com/insights/",
	"AQR Capital":                    "https://www.aqr.com/Insights",
	"Millennium":                     "https://www.mlp.com/insights/",
	"Point72":                        "https://www.point72.com/insights/",
	"Goldman Sachs":                  "https://www.goldmansachs.com/insights/",
	"Morgan Stanley":                 "https://www.morganstanley.com/ideas/",
	"JP Morgan":                      "https://www.jpmorgan.com/insights",
}

// investorURLs maps firm name to its investor relations page.
var investorURLs = map[string]string{
	"Citadel":                "https://www.citadel.com/investment-strategies/",
	"Two Sigma":              "https://www.twosigma.com/funds/",
	"AQR Capital":            "https://www.aqr.com/library",
	"Millennium":             "https://www.mlp.com/about/",
	"Point72":                "https://www.point72.com/",
	"Bridgewater Associates": "https://www.bridgewater.com/research-and-insights/",
	"Goldman Sachs":          "https://www.goldmansachs.com/investor-relations/",
	"Morgan Stanley":         "https://www.morganstanley.com/about-us-ir",
	"JP Morgan":              "https://www.jpmorganchase.com/ir/investor-relations",
	"BlackRock":              "https://ir.blackrock.com/",
}

// youtubeChannels maps firm name to its YouTube channel ID.
var youtubeChannels = map[string]string{
	"Citadel":        "UCR6pJLJj5PJqQvXYhLpKEHQ",
	"Two Sigma":      "UCjOhwAU8VNpxCpJqKyf8sYA",
	"Jane Street":    "UCDsK_KHQ-xRqRfMd1xvEXkg",
	"AQR Capital":    "UCyPXdMWkJqFvqJfvqFmRRRg",
	"Goldman Sachs":  "UCRJzYKfa-8L6pKqVq4DqbpQ",
	"Morgan Stanley": "UCzjNRcGmWqf0xDDJEJDnRjg",
	"JP Morgan":      "UCe3v8hXGwVd1eMDmvFr2G7w",
	"BlackRock":      "UCp_SdNPEZmBEcrwEh1W2OXg",
}

// Registry holds the static firm and keyword data. It is built once at
// process start and never mutated afterwards.
type Registry struct {
	firms           []string
	keywords        []string
	jobRoles        []string
	eventSources    []Source
	careersURLs     map[string]string
	blogURLs        map[string]string
	investorURLs    map[string]string
	youtubeChannels map[string]string
}

// NewRegistry builds the registry from the built-in data. The keyword
// list is the topic keywords followed by every firm name lower-cased.
func NewRegistry() *Registry {
	keywords := make([]string, 0, len(topicKeywords)+len(firmNames))
	keywords = append(keywords, topicKeywords...)
	for _, name := range firmNames {
		keywords = append(keywords, strings.ToLower(name))
	}

	return &Registry{
		firms:           firmNames,
		keywords:        keywords,
		jobRoles:        jobRoles,
		eventSources:    campusEventSources,
		careersURLs:     careersURLs,
		blogURLs:        blogURLs,
		investorURLs:    investorURLs,
		youtubeChannels: youtubeChannels,
	}
}

// Firms returns the tracked firm names in registry order.
func (r *Registry) Firms() []string {
	result := make([]string, len(r.firms))
	copy(result, r.firms)
	return result
}

// Keywords returns the relevance keywords (topic terms plus lower-cased
// firm names).
func (r *Registry) Keywords() []string {
	result := make([]string, len(r.keywords))
	copy(result, r.keywords)
	return result
}

// JobRoles returns the relevant job role phrases.
func (r *Registry) JobRoles() []string {
	result := make([]string, len(r.jobRoles))
	copy(result, r.jobRoles)
	return result
}

// EventSources returns the default campus event sources.
func (r *Registry) EventSources() []Source {
	result := make([]Source, len(r.eventSources))
	copy(result, r.eventSources)
	return result
}

// CareersURL returns the careers page for a firm, if known.
func (r *Registry) CareersURL(name string) (string, bool) {
	url, ok := r.careersURLs[name]
	return url, ok
}

// BlogURL returns the blog page for a firm, if known.
func (r *Registry) BlogURL(name string) (string, bool) {
	url, ok := r.blogURLs[name]
	return url, ok
}

// InvestorURL returns the investor relations page for a firm, if known.
func (r *Registry) InvestorURL(name string) (string, bool) {
	url, ok := r.investorURLs[name]
	return url, ok
}

// YouTubeChannel returns the YouTube channel ID for a firm, if known.
func (r *Registry) YouTubeChannel(name string) (string, bool) {
	id, ok := r.youtubeChannels[name]
	return id, ok
}

// CareersFirms returns the firm names that have a careers page, in
// registry order.
func (r *Registry) CareersFirms() []string {
	return r.firmsWith(r.careersURLs)
}

// BlogFirms returns the firm names that have a blog page, in registry
// order.
func (r *Registry) BlogFirms() []string {
	return r.firmsWith(r.blogURLs)
}

// InvestorFirms returns the firm names that have an investor relations
// page, in registry order.
func (r *Registry) InvestorFirms() []string {
	return r.firmsWith(r.investorURLs)
}

// YouTubeFirms returns the firm names that have a YouTube channel, in
// registry order.
func (r *Registry) YouTubeFirms() []string {
	return r.firmsWith(r.youtubeChannels)
}

func (r *Registry) firmsWith(m map[string]string) []string {
	result := make([]string, 0, len(m))
	seen := make(map[string]struct{}, len(m))
	for _, name := range r.firms {
		if _, dup := seen[name]; dup {
			continue
		}
		if _, ok := m[name]; ok {
			result = append(result, name)
			seen[name] = struct{}{}
		}
	}
	// Names outside the firm list (such as "Millennium") keep their
	// entries too, appended after the ordered ones in sorted order.
	var extras []string
	for name := range m {
		if _, ok := seen[name]; !ok {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	return append(result, extras...)
}
