// Package docs holds the user documentation of perf, one markdown file per topic.
//
// The readme topic is the index listing the others.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var pages embed.FS

// index is the topic listing the others.
const index = "readme"

// all is the pseudo topic standing for every topic.
const all = "*"

// Index returns the index topic.
func Index() (string, error) { return GetTopic(index) }

// GetTopic returns the markdown of a topic, or of every topic for "*".
func GetTopic(topic string) (string, error) {
	if topic == all {
		names, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(names...)
	}
	content, err := pages.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates the markdown of topics, separated by a blank line.
func GetTopics(topics ...string) (string, error) {
	contents := make([]string, 0, len(topics))
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		contents = append(contents, strings.TrimRight(content, "\n"))
	}
	return strings.Join(contents, "\n\n") + "\n", nil
}

// GetAllTopics returns the names of the topics in alphabetical order,
// the index excepted.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(pages, "*.md")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, file := range files {
		if name := strings.TrimSuffix(file, ".md"); name != index {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}
