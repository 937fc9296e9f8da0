// Package catalog holds the built-in meme template catalog: the render-facing
// template records, the suggestion-facing metadata records, and the category
// groupings. The catalog is static and validated once at load time.
package catalog

import (
	"sort"
	"strings"

	"github.com/kozko2001/meme-generator-mcp/internal/memerr"
)

// Popularity ranks how widely recognized a template is. An empty value means
// the template is unranked.
type Popularity string

const (
	PopularityHigh   Popularity = "high"
	PopularityMedium Popularity = "medium"
	PopularityLow    Popularity = "low"
)

// CategoryID identifies one of the fixed template categories.
type CategoryID string

const (
	CategoryReactions   CategoryID = "reactions"
	CategoryComparisons CategoryID = "comparisons"
	CategoryQuestioning CategoryID = "questioning"
	CategoryOpinions    CategoryID = "opinions"
	CategorySuccessFail CategoryID = "success-fail"
	CategorySocial      CategoryID = "social"
	CategoryAnimals     CategoryID = "animals"
	CategoryCharacters  CategoryID = "characters"
	CategorySituations  CategoryID = "situations"
)

// Template is the render-facing record: how many text slots the image takes
// and an example filling for each slot.
type Template struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"name"`
	SlotCount   int      `json:"slot_count"`
	ExampleText []string `json:"example_text"`
}

// Metadata is the suggestion-facing record for a template.
type Metadata struct {
	ID               string     `json:"id"`
	UsageDescription string     `json:"usage"`
	Category         CategoryID `json:"category"`
	Keywords         []string   `json:"keywords"`
	Popularity       Popularity `json:"popularity"`
	SimilarTemplates []string   `json:"similar_templates"`
}

// Category groups templates by humor style.
type Category struct {
	ID          CategoryID `json:"id"`
	DisplayName string     `json:"name"`
	Description string     `json:"description"`
	TemplateIDs []string   `json:"template_ids"`
}

// Catalog is the validated, immutable template store.
type Catalog struct {
	ids        []string
	templates  map[string]Template
	metadata   map[string]Metadata
	categories map[CategoryID]Category
	catOrder   []CategoryID
}

const (
	minSlots = 1
	maxSlots = 8
)

// Load builds the catalog from the built-in tables and validates it. Any
// mismatch between the template, metadata, and category tables is reported
// as a consistency error.
func Load() (*Catalog, error) {
	c := &Catalog{
		templates:  make(map[string]Template, len(templateTable)),
		metadata:   make(map[string]Metadata, len(metadataTable)),
		categories: make(map[CategoryID]Category, len(categoryTable)),
	}

	for _, t := range templateTable {
		if _, dup := c.templates[t.ID]; dup {
			return nil, memerr.Consistencyf("templates", "duplicate template ID %q", t.ID)
		}
		if t.SlotCount < minSlots || t.SlotCount > maxSlots {
			return nil, memerr.Consistencyf("templates", "template %q has slot count %d, want %d..%d", t.ID, t.SlotCount, minSlots, maxSlots)
		}
		if len(t.ExampleText) != t.SlotCount {
			return nil, memerr.Consistencyf("templates", "template %q has %d example lines for %d slots", t.ID, len(t.ExampleText), t.SlotCount)
		}
		c.templates[t.ID] = t
		c.ids = append(c.ids, t.ID)
	}

	for _, m := range metadataTable {
		if _, ok := c.templates[m.ID]; !ok {
			return nil, memerr.Consistencyf("metadata", "metadata for unknown template %q", m.ID)
		}
		if _, dup := c.metadata[m.ID]; dup {
			return nil, memerr.Consistencyf("metadata", "duplicate metadata for template %q", m.ID)
		}
		if len(m.Keywords) == 0 {
			return nil, memerr.Consistencyf("metadata", "template %q has no keywords", m.ID)
		}
		switch m.Popularity {
		case "", PopularityHigh, PopularityMedium, PopularityLow:
		default:
			return nil, memerr.Consistencyf("metadata", "template %q has invalid popularity %q", m.ID, m.Popularity)
		}
		m.Keywords = lowercaseAll(m.Keywords)
		c.metadata[m.ID] = m
	}
	for id := range c.templates {
		if _, ok := c.metadata[id]; !ok {
			return nil, memerr.Consistencyf("metadata", "template %q has no metadata", id)
		}
	}

	if err := c.validateCategories(); err != nil {
		return nil, err
	}
	if err := c.validateSimilar(); err != nil {
		return nil, err
	}
	return c, nil
}

// validateCategories checks that the category table partitions the template
// set: every template appears in exactly one category, and that category
// agrees with the template's own metadata.
func (c *Catalog) validateCategories() error {
	seen := make(map[string]CategoryID, len(c.templates))
	for _, cat := range categoryTable {
		if _, dup := c.categories[cat.ID]; dup {
			return memerr.Consistencyf("categories", "duplicate category %q", cat.ID)
		}
		for _, id := range cat.TemplateIDs {
			if _, ok := c.templates[id]; !ok {
				return memerr.Consistencyf("categories", "category %q lists unknown template %q", cat.ID, id)
			}
			if prev, dup := seen[id]; dup {
				return memerr.Consistencyf("categories", "template %q listed in both %q and %q", id, prev, cat.ID)
			}
			seen[id] = cat.ID
			if got := c.metadata[id].Category; got != cat.ID {
				return memerr.Consistencyf("categories", "template %q is listed under %q but its metadata says %q", id, cat.ID, got)
			}
		}
		c.categories[cat.ID] = cat
		c.catOrder = append(c.catOrder, cat.ID)
	}
	for id := range c.templates {
		if _, ok := seen[id]; !ok {
			return memerr.Consistencyf("categories", "template %q belongs to no category", id)
		}
	}
	return nil
}

func (c *Catalog) validateSimilar() error {
	for id, m := range c.metadata {
		for _, sim := range m.SimilarTemplates {
			if sim == id {
				return memerr.Consistencyf("metadata", "template %q lists itself as similar", id)
			}
			if _, ok := c.templates[sim]; !ok {
				return memerr.Consistencyf("metadata", "template %q lists unknown similar template %q", id, sim)
			}
		}
	}
	return nil
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// IDs returns all template IDs in catalog order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Template looks up the render-facing record for id.
func (c *Catalog) Template(id string) (Template, bool) {
	t, ok := c.templates[id]
	return t, ok
}

// Metadata looks up the suggestion-facing record for id.
func (c *Catalog) Metadata(id string) (Metadata, bool) {
	m, ok := c.metadata[id]
	return m, ok
}

// Categories returns all categories in catalog order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, 0, len(c.catOrder))
	for _, id := range c.catOrder {
		out = append(out, c.categories[id])
	}
	return out
}

// Category looks up a category by ID.
func (c *Catalog) Category(id CategoryID) (Category, bool) {
	cat, ok := c.categories[id]
	return cat, ok
}

// TemplatesInCategory returns the render-facing records for every member of
// the category, in the category's listed order.
func (c *Catalog) TemplatesInCategory(id CategoryID) []Template {
	cat, ok := c.categories[id]
	if !ok {
		return nil
	}
	out := make([]Template, 0, len(cat.TemplateIDs))
	for _, tid := range cat.TemplateIDs {
		out = append(out, c.templates[tid])
	}
	return out
}

// SortedIDs returns all template IDs in lexical order.
func (c *Catalog) SortedIDs() []string {
	out := c.IDs()
	sort.Strings(out)
	return out
}

func lowercaseAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}
