package ui

import (
	"net/url"
	"strings"

	"github.com/google/shlex"
)

// parseDroppedPaths splits pasted text into file paths. Terminals deliver
// dropped files either shell-quoted on one line or as file:// URIs, one per line.
func parseDroppedPaths(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if strings.HasPrefix(text, "file://") {
		var paths []string
		for _, line := range strings.Split(text, "\n") {
			if p := fileURIPath(strings.TrimSpace(line)); p != "" {
				paths = append(paths, p)
			}
		}
		return paths
	}

	words, err := shlex.Split(text)
	if err != nil {
		// unbalanced quotes: fall back to one path per line
		words = strings.Split(text, "\n")
	}

	var paths []string
	for _, w := range words {
		w = strings.TrimSpace(w)
		if strings.HasPrefix(w, "file://") {
			w = fileURIPath(w)
		}
		if w != "" {
			paths = append(paths, w)
		}
	}
	return paths
}

func fileURIPath(s string) string {
	u, err := url.Parse(s)
	if err != nil || u.Scheme != "file" {
		return ""
	}
	return u.Path
}
