package dropzone

import (
	"strings"

	"dropzone/internal/domain"
)

// wildcard categories recognised in accept patterns
var wildcardCategories = []string{"audio", "video", "image"}

// Validate checks files against accept patterns.
//
// An empty pattern list accepts everything. Otherwise a file passes when its
// extension (".png"), its MIME type ("image/png") or, for audio, video and
// image files, its category wildcard ("image/*") is in the list. Patterns are
// compared trimmed and lowercased. The first failing file ends validation.
func Validate(files []domain.File, accept []string) error {
	if len(accept) == 0 {
		return nil
	}

	patterns := normalizePatterns(accept)
	wildcards := make(map[string]bool, len(wildcardCategories))
	for _, c := range wildcardCategories {
		wildcards[c] = patterns[c+"/*"]
	}

	for _, f := range files {
		if !accepts(f, patterns, wildcards) {
			return newFormatError(f.Name())
		}
	}
	return nil
}

func normalizePatterns(accept []string) map[string]bool {
	patterns := make(map[string]bool, len(accept))
	for _, p := range accept {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			patterns[p] = true
		}
	}
	return patterns
}

func accepts(f domain.File, patterns, wildcards map[string]bool) bool {
	if patterns[Extension(f.Name())] {
		return true
	}

	mimeType := strings.ToLower(f.Type())
	if wildcards[Category(mimeType)] {
		return true
	}
	return patterns[mimeType]
}

// Extension returns the lowercased text after the last "." in name, with a
// leading ".". A name without a "." yields "." followed by the whole name.
func Extension(name string) string {
	name = strings.ToLower(name)
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return "." + name
}

// Category returns the part of a MIME type before "/"
func Category(mimeType string) string {
	category, _, _ := strings.Cut(mimeType, "/")
	return category
}

// ParseAccept splits a comma-separated accept attribute into patterns,
// preserving order and dropping blanks
func ParseAccept(attr string) []string {
	var patterns []string
	for _, p := range strings.Split(attr, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
