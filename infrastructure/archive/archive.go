// Package archive stores scraped content files under a content
// directory, organized by type with collision-free names.
package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Content type subdirectories.
const (
	dirBlogPosts   = "blog_posts"
	dirReports     = "reports"
	dirTranscripts = "transcripts"
	dirVideos      = "videos"
)

// maxTitleLen caps the sanitized title portion of generated filenames.
const maxTitleLen = 50

// Archive writes and reads content files below a base directory. Saved
// paths are returned relative to the base so they stay valid when the
// data directory moves.
type Archive struct {
	baseDir string
	now     func() time.Time
}

// New creates an Archive rooted at baseDir, creating the per-type
// subdirectories.
func New(baseDir string) (*Archive, error) {
	a := &Archive{baseDir: baseDir, now: time.Now}
	for _, sub := range []string{dirBlogPosts, dirReports, dirTranscripts, dirVideos} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create archive directory %s: %w", sub, err)
		}
	}
	return a, nil
}

// BaseDir returns the archive root.
func (a *Archive) BaseDir() string {
	return a.baseDir
}

// SaveBlogPost writes blog post content and returns the relative path.
// Format is the file extension without a dot, typically "md" or "html".
func (a *Archive) SaveBlogPost(firmName, title, content, format string) (string, error) {
	return a.saveText(dirBlogPosts, firmName, title, "."+format, content)
}

// SaveReport writes a downloaded report and returns the relative path.
func (a *Archive) SaveReport(firmName, title string, data []byte, ext string) (string, error) {
	rel := filepath.Join(dirReports, a.filename(firmName, title, ext))
	if err := os.WriteFile(filepath.Join(a.baseDir, rel), data, 0o644); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return rel, nil
}

// SaveTranscript writes a video transcript and returns the relative
// path.
func (a *Archive) SaveTranscript(firmName, title, transcript string) (string, error) {
	return a.saveText(dirTranscripts, firmName, title, ".txt", transcript)
}

func (a *Archive) saveText(dir, firmName, title, ext, content string) (string, error) {
	rel := filepath.Join(dir, a.filename(firmName, title, ext))
	if err := os.WriteFile(filepath.Join(a.baseDir, rel), []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("save %s: %w", dir, err)
	}
	return rel, nil
}

// Read returns the content of a previously saved file.
func (a *Archive) Read(relativePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(a.baseDir, relativePath))
	if err != nil {
		return nil, fmt.Errorf("read archived file: %w", err)
	}
	return data, nil
}

// Exists reports whether a relative path refers to a stored file.
func (a *Archive) Exists(relativePath string) bool {
	_, err := os.Stat(filepath.Join(a.baseDir, relativePath))
	return err == nil
}

// TypeStats summarizes one content type directory.
type TypeStats struct {
	Count     int
	SizeBytes int64
}

// Stats returns per-type file counts and sizes.
func (a *Archive) Stats() (map[string]TypeStats, error) {
	stats := make(map[string]TypeStats)
	for _, sub := range []string{dirBlogPosts, dirReports, dirTranscripts, dirVideos} {
		entries, err := os.ReadDir(filepath.Join(a.baseDir, sub))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read archive directory %s: %w", sub, err)
		}
		var ts TypeStats
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			ts.Count++
			ts.SizeBytes += info.Size()
		}
		stats[sub] = ts
	}
	return stats, nil
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// sanitize lowercases a name and collapses anything outside
// [a-z0-9_-] into underscores.
func sanitize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = unsafeChars.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		s = "untitled"
	}
	return s
}

// filename builds <firm>_<yyyymmdd>_<hash8>_<title><ext>. The title
// hash keeps same-day saves of distinct titles from colliding after
// truncation.
func (a *Archive) filename(firmName, title, ext string) string {
	sum := sha256.Sum256([]byte(title))
	hash := hex.EncodeToString(sum[:])[:8]

	safeTitle := sanitize(title)
	if len(safeTitle) > maxTitleLen {
		safeTitle = safeTitle[:maxTitleLen]
	}

	return fmt.Sprintf("%s_%s_%s_%s%s",
		sanitize(firmName),
		a.now().Format("20060102"),
		hash,
		safeTitle,
		ext,
	)
}
