package util

import (
    "testing"

    "folio/internal/content"
    "folio/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
    for i, t := range tags {
        if t.Kind == k {
            return i, true
        }
    }
    return -1, false
}

func TestCurrentJob(t *testing.T) {
    it := content.Item{
        Period:   "September 2022 - Present (3 years 3 months)",
        Location: "San Diego, California, United States",
        Type:     content.Work,
    }
    tags := ComputeTags(it)
    if _, ok := findKind(tags, state.CURRENT); !ok {
        t.Fatalf("expected CURRENT tag present")
    }
    if idx, ok := findKind(tags, state.DURATION); !ok || tags[idx].Text != "3 years 3 months" {
        t.Fatalf("expected DURATION with the period's duration")
    }
    if idx, ok := findKind(tags, state.LOCATION); !ok || tags[idx].Text != "San Diego, California" {
        t.Fatalf("expected shortened location, got %+v", tags)
    }
}

func TestEducationHasNoCurrent(t *testing.T) {
    it := content.Item{Period: "August 2014 - May 2018", Type: content.Education}
    tags := ComputeTags(it)
    if len(tags) != 1 || tags[0].Kind != state.EDUCATION {
        t.Fatalf("expected a single EDUCATION tag, got %+v", tags)
    }
}

func TestStableOrder(t *testing.T) {
    it := content.Item{Period: "June 2018 (1 year)", Location: "Remote", Type: content.Work}
    tags := ComputeTags(it)
    order := []state.TagKind{state.WORK, state.CURRENT, state.DURATION, state.LOCATION}
    pos := map[state.TagKind]int{}
    for i, tg := range tags {
        pos[tg.Kind] = i
    }
    prev := -1
    for _, k := range order {
        if idx, ok := pos[k]; ok {
            if idx < prev {
                t.Fatalf("tag %v appears before previous; order unstable", k)
            }
            prev = idx
        }
    }
}
