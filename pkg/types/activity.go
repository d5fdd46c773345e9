package types

import "time"

// ActivityCap is the maximum number of activity entries retained. Older
// entries are silently dropped past the cap.
const ActivityCap = 50

// ActivityEntry is an immutable record of one workflow event. Entries are
// never edited after creation; they leave the log only through the cap.
type ActivityEntry struct {
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}
