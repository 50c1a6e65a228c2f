// Package content holds the static community information screens.
package content

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type Entry struct {
	Name   string `yaml:"name"`
	Detail string `yaml:"detail"`
}

// Job is an open position. Link points at the employer's application page.
type Job struct {
	Title    string `yaml:"title"`
	Employer string `yaml:"employer"`
	Posted   string `yaml:"posted"`
	Closing  string `yaml:"closing"`
	Link     string `yaml:"link"`
}

type Section struct {
	Key     string  `yaml:"key"`
	Title   string  `yaml:"title"`
	Entries []Entry `yaml:"entries"`
	Jobs    []Job   `yaml:"jobs"`
	Contact string  `yaml:"contact"`
}

type Catalog struct {
	Sections []Section `yaml:"sections"`
}

// Parse decodes a catalog document. Section keys must be unique.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := map[string]bool{}
	for _, s := range c.Sections {
		if s.Key == "" {
			return nil, fmt.Errorf("parse catalog: section %q has no key", s.Title)
		}
		if seen[s.Key] {
			return nil, fmt.Errorf("parse catalog: duplicate section %q", s.Key)
		}
		seen[s.Key] = true
		for _, j := range s.Jobs {
			if j.Title == "" || j.Link == "" {
				return nil, fmt.Errorf("parse catalog: job in %q needs a title and a link", s.Key)
			}
		}
	}
	return &c, nil
}

// Load returns the built-in catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

func (c *Catalog) Section(key string) (Section, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, s := range c.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.Sections))
	for _, s := range c.Sections {
		keys = append(keys, s.Key)
	}
	return keys
}

// Render prints s as a plain text screen.
func Render(w io.Writer, s Section) {
	fmt.Fprintf(w, "%s\n%s\n", s.Title, strings.Repeat("=", len(s.Title)))
	for _, e := range s.Entries {
		fmt.Fprintf(w, "- %s: %s\n", e.Name, e.Detail)
	}
	for _, j := range s.Jobs {
		fmt.Fprintf(w, "- %s, %s\n", j.Title, j.Employer)
		if j.Posted != "" || j.Closing != "" {
			fmt.Fprintf(w, "  Posted: %s  Closing: %s\n", j.Posted, j.Closing)
		}
		fmt.Fprintf(w, "  Apply: %s\n", j.Link)
	}
	if s.Contact != "" {
		fmt.Fprintf(w, "Contact: %s\n", s.Contact)
	}
}
