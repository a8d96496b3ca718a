// Package docs embeds the operator documentation and serves it by topic.
package docs

import (
	"fmt"
	"sort"
	"strings"

	"embed"
)

//go:embed *.md
var pages embed.FS

// Topic returns the markdown content of one documentation topic, or of
// every topic concatenated when name is "*".
func Topic(name string) (string, error) {
	if name == "*" {
		var b strings.Builder
		for _, t := range Topics() {
			content, err := Topic(t)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
		return b.String(), nil
	}

	content, err := pages.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics lists every available topic name, sorted. The readme is the
// index of the topics, not a topic itself.
func Topics() []string {
	entries, err := pages.ReadDir(".")
	if err != nil {
		return nil // embed.FS root always reads; nothing to report
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics
}
