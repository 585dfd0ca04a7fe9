package util

import (
    "strings"

    "folio/internal/content"
    "folio/internal/tui/state"
)

// ComputeTags calculates the chips for a timeline entry.
//
// The returned slice preserves a stable order:
//   Work|Education, Current, Duration, Location
//
// Rules:
// - Exactly one of Work or Education is always present.
// - Current appears when the period has no end or ends "Present".
// - Duration and Location appear only when the entry carries them.
func ComputeTags(it content.Item) []state.Tag {
    p := content.ParsePeriod(it.Period)
    tags := make([]state.Tag, 0, 4)

    if it.Type == content.Education {
        tags = append(tags, state.Tag{Kind: state.EDUCATION})
    } else {
        tags = append(tags, state.Tag{Kind: state.WORK})
    }
    if p.Start != "" && p.Current() {
        tags = append(tags, state.Tag{Kind: state.CURRENT})
    }
    if p.Duration != "" {
        tags = append(tags, state.Tag{Kind: state.DURATION, Text: p.Duration})
    }
    if loc := strings.TrimSpace(it.Location); loc != "" {
        tags = append(tags, state.Tag{Kind: state.LOCATION, Text: shortLocation(loc)})
    }
    return tags
}

// shortLocation drops the trailing country when a city and region precede
// it: "San Diego, California, United States" -> "San Diego, California".
func shortLocation(loc string) string {
    parts := strings.Split(loc, ",")
    if len(parts) < 3 {
        return loc
    }
    for i := range parts {
        parts[i] = strings.TrimSpace(parts[i])
    }
    return strings.Join(parts[:len(parts)-1], ", ")
}
