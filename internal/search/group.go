package search

import (
	"github.com/smsportal/portal-console/internal/catalog"
)

// Group is a run of results sharing a category.
type Group struct {
	Category catalog.Category
	Label    string
	Results  []Result
}

// GroupByCategory buckets results by category. Groups follow
// catalog.Categories order, then unknown categories in first-seen order;
// results keep their relative order inside a group.
func GroupByCategory(results []Result) []Group {
	if len(results) == 0 {
		return []Group{}
	}
	buckets := make(map[catalog.Category][]Result)
	var unknown []catalog.Category
	for _, r := range results {
		if _, seen := buckets[r.Category]; !seen && !r.Category.IsValid() {
			unknown = append(unknown, r.Category)
		}
		buckets[r.Category] = append(buckets[r.Category], r)
	}

	order := append(append([]catalog.Category{}, catalog.Categories...), unknown...)
	groups := make([]Group, 0, len(buckets))
	for _, c := range order {
		if rs, ok := buckets[c]; ok {
			groups = append(groups, Group{Category: c, Label: c.Label(), Results: rs})
		}
	}
	return groups
}

// Flatten returns the results of groups in display order.
func Flatten(groups []Group) []Result {
	var out []Result
	for _, g := range groups {
		out = append(out, g.Results...)
	}
	return out
}
