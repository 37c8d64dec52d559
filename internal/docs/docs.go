// Package docs holds the articles printed by 'nasdeck docs'.
package docs

import (
	"fmt"
	"io"
	"strings"
)

// Topic is one article.
type Topic struct {
	Name    string
	Title   string
	Summary string
	// Content is plain text; the first line repeats Title.
	Content string
}

// All returns every topic in display order.
func All() []Topic {
	return topics
}

// Get finds a topic by name, ignoring case and surrounding blanks.
func Get(name string) (Topic, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range topics {
		if t.Name == name {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("no docs topic %q: run 'nasdeck docs' for the list", name)
}

// WriteIndex writes the topic list with a one-line summary per topic.
func WriteIndex(w io.Writer) {
	fmt.Fprint(w, "\nAvailable topics:\n\n")
	for _, t := range topics {
		fmt.Fprintf(w, "  %-12s %s\n", t.Name, t.Summary)
	}
	fmt.Fprintln(w, "\nRun 'nasdeck docs <topic>' to read a topic.")
}
