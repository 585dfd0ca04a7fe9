package content

import (
	"fmt"
	"sort"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one field that differs between two portfolios.
type Change struct {
	Field    string
	Before   string
	After    string
	Distance int
	Diffs    []diffmatchpatch.Diff
}

// Changes lists the fields that differ between old and new, in page order.
func Changes(old, new *Portfolio) []Change {
	before := fields(old)
	after := fields(new)

	var keys []string
	seen := map[string]bool{}
	for _, f := range append(before.order, after.order...) {
		if !seen[f] {
			seen[f] = true
			keys = append(keys, f)
		}
	}

	dmp := diffmatchpatch.New()
	var out []Change
	for _, k := range keys {
		a, b := before.values[k], after.values[k]
		if a == b {
			continue
		}
		diffs := dmp.DiffMain(a, b, false)
		diffs = dmp.DiffCleanupSemantic(diffs)
		out = append(out, Change{
			Field:    k,
			Before:   a,
			After:    b,
			Distance: dmp.DiffLevenshtein(diffs),
			Diffs:    diffs,
		})
	}
	return out
}

type flat struct {
	order  []string
	values map[string]string
}

func (f *flat) add(key, value string) {
	if _, ok := f.values[key]; !ok {
		f.order = append(f.order, key)
	}
	f.values[key] = value
}

func fields(p *Portfolio) flat {
	f := flat{values: map[string]string{}}
	if p == nil {
		return f
	}
	f.add("about.label", p.About.Label)
	f.add("about.heading", p.About.Heading)
	f.add("about.highlight", p.About.Highlight)
	for i, para := range p.About.Paragraphs {
		f.add(fmt.Sprintf("about.paragraphs[%d]", i), para)
	}
	f.add("about.animation", p.About.Animation)
	f.add("experience.label", p.Experience.Label)
	f.add("experience.heading", p.Experience.Heading)
	for i, it := range p.Experience.Items {
		pre := fmt.Sprintf("experience.items[%d].", i)
		f.add(pre+"company", it.Company)
		f.add(pre+"role", it.Role)
		f.add(pre+"period", it.Period)
		f.add(pre+"location", it.Location)
		f.add(pre+"url", it.URL)
		f.add(pre+"logo", it.Logo)
		f.add(pre+"type", string(it.Type))
		for j, d := range it.Description {
			f.add(fmt.Sprintf("%sdescription[%d]", pre, j), d)
		}
	}
	return f
}

// Fields returns the changed field names, sorted.
func Fields(changes []Change) []string {
	out := make([]string, 0, len(changes))
	for _, c := range changes {
		out = append(out, c.Field)
	}
	sort.Strings(out)
	return out
}
