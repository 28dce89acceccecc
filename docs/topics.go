// Package docs embeds the fbd user documentation.
//
// Each topic is a markdown file; the readme topic lists them all.
package docs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Index is the topic listing every other topic.
const Index = "readme"

// All is the pseudo topic standing for every topic.
const All = "*"

// ErrUnknownTopic is returned for a topic without documentation.
var ErrUnknownTopic = errors.New("unknown topic")

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	if topic == All {
		return GetTopics(All)
	}
	content, err := docs.ReadFile(topic + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w %q, see 'fbd topic'", ErrUnknownTopic, topic)
	}
	if err != nil {
		return "", fmt.Errorf("cannot read topic %q: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated together.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		names := []string{topic}
		if topic == All {
			var err error
			if names, err = GetAllTopics(); err != nil {
				return "", err
			}
		}
		for _, name := range names {
			content, err := GetTopic(name)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted list of documentation topics, the index excluded.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".md")
		if name == Index {
			continue
		}
		topics = append(topics, name)
	}
	slices.Sort(topics)
	return topics, nil
}
