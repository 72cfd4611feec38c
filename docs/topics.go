// Package docs holds the quote user manual.
//
// The manual is one Markdown file per topic. readme.md is its first page and
// lists the topics, in reading order, as "* <name>: <summary>" lines.
package docs

import (
	"embed"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

//go:embed *.md
var pages embed.FS

// ErrUnknownTopic is returned for a topic that is not in the manual.
var ErrUnknownTopic = errors.New("unknown topic")

// All is the topic name that stands for every topic.
const All = "*"

// Topic is an entry of the manual index.
type Topic struct {
	Name    string
	Summary string
}

var indexLine = regexp.MustCompile(`^\*\s+([\w-]+):\s*(.*)$`)

// Index returns the topics listed by readme.md, in reading order.
func Index() ([]Topic, error) {
	readme, err := pages.ReadFile("readme.md")
	if err != nil {
		return nil, err
	}
	var index []Topic
	for _, line := range strings.Split(string(readme), "\n") {
		if m := indexLine.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			index = append(index, Topic{Name: m[1], Summary: m[2]})
		}
	}
	return index, nil
}

// Names returns the names of the topics, in reading order.
func Names() []string {
	index, _ := Index()
	names := make([]string, len(index))
	for i, t := range index {
		names[i] = t.Name
	}
	return names
}

// Read returns the pages of the named topics, separated by a blank line.
// All expands to every topic of the index, and no name at all returns the
// first page.
func Read(names ...string) (string, error) {
	if len(names) == 0 {
		names = []string{"readme"}
	}
	var b strings.Builder
	for _, name := range names {
		if name == All {
			if err := readEach(&b, Names()); err != nil {
				return "", err
			}
			continue
		}
		if err := readEach(&b, []string{name}); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func readEach(b *strings.Builder, names []string) error {
	for _, name := range names {
		if strings.ContainsAny(name, `/\.`) {
			return fmt.Errorf("%w %q", ErrUnknownTopic, name)
		}
		page, err := pages.ReadFile(name + ".md")
		if err != nil {
			return fmt.Errorf("%w %q", ErrUnknownTopic, name)
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.Write(page)
	}
	return nil
}
