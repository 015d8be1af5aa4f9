package extractor

import (
	"context"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/domain/firm"
	"github.com/quantwatch/quantwatch/domain/store"
	"github.com/quantwatch/quantwatch/infrastructure/archive"
	"github.com/quantwatch/quantwatch/internal/log"
)

const (
	// maxBlogContainers bounds how many posts one listing page can
	// contribute.
	maxBlogContainers = 20

	// maxBlogTags caps tags taken from one post.
	maxBlogTags = 5
)

// technicalKeywords tag a post as engineering content. A label, not a
// filter: non-technical posts are stored too.
var technicalKeywords = []string{
	"engineering", "technical", "algorithm", "system", "architecture",
	"performance", "optimization", "data", "machine learning", "ml",
	"infrastructure", "platform", "api", "database", "distributed",
	"scalability", "latency", "code", "developer", "programming",
	"software", "technology", "tech", "compute", "cloud",
}

// BlogExtractor scrapes firm engineering blogs.
type BlogExtractor struct {
	client  *Client
	firms   firm.Store
	blogs   content.BlogStore
	archive *archive.Archive
	logger  *log.Logger
}

// NewBlogExtractor creates a BlogExtractor.
func NewBlogExtractor(
	client *Client,
	firms firm.Store,
	blogs content.BlogStore,
	arch *archive.Archive,
	logger *log.Logger,
) *BlogExtractor {
	return &BlogExtractor{
		client:  client,
		firms:   firms,
		blogs:   blogs,
		archive: arch,
		logger:  logger,
	}
}

type blogCandidate struct {
	title     string
	url       string
	summary   string
	content   string
	author    string
	published time.Time
	tags      []string
}

// ScrapeBlog scrapes one firm's blog, preferring the feed form when the
// URL looks like one. Returns the number of new posts stored.
func (b *BlogExtractor) ScrapeBlog(ctx context.Context, firmName, blogURL string) int {
	b.logger.InfoContext(ctx, "scraping blog", "firm", firmName, "url", blogURL)

	if isFeedURL(blogURL) {
		return b.scrapeFeed(ctx, firmName, blogURL)
	}

	body, err := b.client.Get(ctx, blogURL)
	if err != nil {
		b.logger.ErrorContext(ctx, "blog scrape failed", "firm", firmName, "error", err)
		return 0
	}
	doc, err := parseHTML(body)
	if err != nil {
		b.logger.ErrorContext(ctx, "blog scrape failed", "firm", firmName, "error", err)
		return 0
	}

	found := 0
	for _, candidate := range extractBlogCandidates(doc, blogURL) {
		if b.process(ctx, candidate, firmName) {
			found++
		}
	}
	b.logger.InfoContext(ctx, "blog scraped", "firm", firmName, "posts", found)
	return found
}

func (b *BlogExtractor) scrapeFeed(ctx context.Context, firmName, feedURL string) int {
	body, err := b.client.Get(ctx, feedURL)
	if err != nil {
		b.logger.ErrorContext(ctx, "blog feed scrape failed", "firm", firmName, "error", err)
		return 0
	}
	items, err := parseFeed(body)
	if err != nil {
		b.logger.ErrorContext(ctx, "blog feed scrape failed", "firm", firmName, "error", err)
		return 0
	}

	found := 0
	for _, item := range items {
		candidate := blogCandidate{
			title:     item.Title,
			url:       item.Link,
			summary:   item.Summary,
			content:   item.Content,
			author:    item.Author,
			published: item.Published,
			tags:      item.Tags,
		}
		if b.process(ctx, candidate, firmName) {
			found++
		}
	}
	b.logger.InfoContext(ctx, "blog feed scraped", "firm", firmName, "posts", found)
	return found
}

// process stores a candidate post, archiving its content. Technical
// posts without inline content get a full-page fetch first.
func (b *BlogExtractor) process(ctx context.Context, candidate blogCandidate, firmName string) bool {
	if candidate.title == "" || candidate.url == "" {
		return false
	}

	// Skip known URLs before doing any content fetching.
	known, err := b.blogs.Count(ctx, store.WithURL(candidate.url))
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to check blog post", "url", candidate.url, "error", err)
		return false
	}
	if known > 0 {
		return false
	}

	isTechnical := isTechnicalPost(candidate.title, candidate.summary, candidate.tags)

	body := candidate.content
	if body == "" && isTechnical {
		body = b.fetchFullPost(ctx, candidate.url)
	}

	contentFile := ""
	if body != "" {
		path, err := b.archive.SaveBlogPost(firmName, candidate.title, body, "html")
		if err != nil {
			b.logger.WarnContext(ctx, "failed to archive blog post", "title", candidate.title, "error", err)
		} else {
			contentFile = path
		}
	}

	owner, err := b.firms.GetOrCreate(ctx, firm.New(firmName))
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to resolve firm", "firm", firmName, "error", err)
		return false
	}

	tags := candidate.tags
	if len(tags) > maxBlogTags {
		tags = tags[:maxBlogTags]
	}

	post := content.NewBlogPost(owner.ID(), candidate.title, candidate.url).
		WithAuthor(candidate.author).
		WithSummary(candidate.summary).
		WithContentFile(contentFile).
		WithTags(tags).
		WithTechnicalFlag(isTechnical)
	if !candidate.published.IsZero() {
		post = post.WithPublishedDate(candidate.published)
	}

	_, created, err := b.blogs.Add(ctx, post)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to store blog post", "title", candidate.title, "error", err)
		return false
	}
	return created
}

// fetchFullPost retrieves a post page and returns its main content
// block as HTML, or "".
func (b *BlogExtractor) fetchFullPost(ctx context.Context, url string) string {
	body, err := b.client.Get(ctx, url)
	if err != nil {
		b.logger.DebugContext(ctx, "failed to fetch full post", "url", url, "error", err)
		return ""
	}
	doc, err := parseHTML(body)
	if err != nil {
		return ""
	}

	block := firstByClass(doc, []string{"article", "div"}, []string{"content", "post-body", "article-body", "entry-content"})
	if block == nil {
		return ""
	}
	return renderNode(block)
}

func isTechnicalPost(title, summary string, tags []string) bool {
	combined := strings.ToLower(title + " " + summary + " " + strings.Join(tags, " "))
	for _, kw := range technicalKeywords {
		if strings.Contains(combined, kw) {
			return true
		}
	}
	return false
}

var blogClassKeywords = []string{"post", "article", "blog", "insight"}

// extractBlogCandidates pulls candidate posts out of a blog index page.
func extractBlogCandidates(doc *html.Node, baseURL string) []blogCandidate {
	containers := findNodes(doc, func(n *html.Node) bool {
		return isElement(n, "article", "div") && attrContainsAny(n, "class", blogClassKeywords)
	}, maxBlogContainers)

	var candidates []blogCandidate
	for _, container := range containers {
		candidate := extractBlogFromContainer(container, baseURL)
		if candidate.title != "" && candidate.url != "" {
			candidates = append(candidates, candidate)
		}
	}
	return candidates
}

func extractBlogFromContainer(container *html.Node, baseURL string) blogCandidate {
	var candidate blogCandidate

	title := firstByClass(container, []string{"h1", "h2", "h3", "a"}, []string{"title", "heading", "headline"})
	if title == nil {
		title = firstByClass(container, []string{"h1", "h2", "h3"}, nil)
	}
	candidate.title = nodeText(title)

	link := firstLink(container)
	if link == nil {
		return blogCandidate{}
	}
	candidate.url = resolveURL(baseURL, attrValue(link, "href"))

	candidate.summary = nodeText(firstByClass(container, []string{"p", "div"}, []string{"summary", "excerpt", "description"}))
	candidate.author = nodeText(firstByClass(container, []string{"span", "div", "a"}, []string{"author"}))

	if date := firstByClass(container, []string{"time", "span"}, []string{"date"}); date != nil {
		raw := attrValue(date, "datetime")
		if raw == "" {
			raw = nodeText(date)
		}
		candidate.published = parseDate(raw)
	}

	tagNodes := findNodes(container, func(n *html.Node) bool {
		return isElement(n, "span", "a") && attrContainsAny(n, "class", []string{"tag", "category", "topic"})
	}, maxBlogTags)
	for _, tag := range tagNodes {
		if text := nodeText(tag); text != "" {
			candidate.tags = append(candidate.tags, text)
		}
	}

	return candidate
}
