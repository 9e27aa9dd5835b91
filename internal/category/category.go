// Package category defines the fixed set of groupings that entries are filed
// under inside a date section's operations log.
package category

import "strings"

// Category identifies one operations-log grouping.
type Category int

const (
	// Uncategorized holds entries written directly under the log heading,
	// before any category heading. It has no heading of its own.
	Uncategorized Category = iota
	Content
	System
	Other
)

// Default is used when a caller names an unknown category.
const Default = Other

type spec struct {
	name    string
	heading string
	icon    string
	markers []string
}

var table = map[Category]spec{
	Content: {
		name:    "content",
		heading: "### ✍️ Content & Research (งานเนื้อหาและค้นคว้า)",
		icon:    "📝",
		markers: []string{"Content & Research", "งานเนื้อหา", "✍️"},
	},
	System: {
		name:    "system",
		heading: "### 🔧 System & Workflow (งานระบบและคำสั่ง)",
		icon:    "🛠",
		markers: []string{"System & Workflow", "งานระบบ", "🔧"},
	},
	Other: {
		name:    "other",
		heading: "### 📌 Other (งานอื่นๆ)",
		icon:    "📌",
		markers: []string{"Other (", "งานอื่น", "📌"},
	},
}

// All lists the named categories in rank order.
func All() []Category {
	return []Category{Content, System, Other}
}

// Parse resolves a CLI category name. "default" is an alias for Default.
func Parse(name string) (Category, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "default" {
		return Default, true
	}
	for _, c := range All() {
		if table[c].name == n {
			return c, true
		}
	}
	return Default, false
}

// String returns the CLI name of c.
func (c Category) String() string {
	if s, ok := table[c]; ok {
		return s.name
	}
	return "uncategorized"
}

// Heading is the canonical heading line written for c.
func (c Category) Heading() string { return table[c].heading }

// Icon is the glyph placed before the title of new entries in c.
func (c Category) Icon() string { return table[c].icon }

// Rank orders categories inside a date section. Uncategorized always comes first.
func (c Category) Rank() int { return int(c) }

// Match reports which category a heading line introduces. Any level-3 or
// deeper heading containing one of the category's historical markers counts.
func Match(line string) (Category, bool) {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, "###") {
		return Uncategorized, false
	}
	text := strings.TrimLeft(t, "#")
	for _, c := range All() {
		for _, m := range table[c].markers {
			if strings.Contains(text, m) {
				return c, true
			}
		}
	}
	return Uncategorized, false
}
