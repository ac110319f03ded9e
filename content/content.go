package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/pages.json
var pagesJSON []byte

type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Page is the copy of one informational page (about, services, contact,
// privacy-policy, terms-of-service).
type Page struct {
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Tagline  string    `json:"tagline"`
	Sections []Section `json:"sections"`
}

// Pages holds every informational page, keyed by slug.
type Pages struct {
	pages  []Page
	bySlug map[string]int
}

func Load() (*Pages, error) {
	var pages []Page
	if err := json.Unmarshal(pagesJSON, &pages); err != nil {
		return nil, fmt.Errorf("decoding pages asset: %w", err)
	}
	bySlug := make(map[string]int, len(pages))
	for i, p := range pages {
		if p.Slug == "" {
			return nil, fmt.Errorf("pages asset: entry %d has no slug", i)
		}
		if _, dup := bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("pages asset: duplicate slug %q", p.Slug)
		}
		bySlug[p.Slug] = i
	}
	return &Pages{pages: pages, bySlug: bySlug}, nil
}

func (ps *Pages) Get(slug string) (Page, bool) {
	i, ok := ps.bySlug[slug]
	if !ok {
		return Page{}, false
	}
	return ps.pages[i], true
}

func (ps *Pages) Slugs() []string {
	out := make([]string, 0, len(ps.pages))
	for _, p := range ps.pages {
		out = append(out, p.Slug)
	}
	return out
}
