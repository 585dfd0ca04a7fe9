package state

// TagKind enumerates the chips shown under a timeline entry.
type TagKind int

const (
    // Stable ordering for display: Work/Education, Current, Duration, Location
    WORK TagKind = iota
    EDUCATION
    CURRENT
    DURATION
    LOCATION
)

// Tag represents a single chip. Text carries free-form labels such as the
// location or the duration; fixed chips leave it empty.
type Tag struct {
    Kind TagKind
    Text string
}
