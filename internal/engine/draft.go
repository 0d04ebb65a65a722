package engine

import "time"

// DraftTTL is how long an unsaved calculator draft stays restorable.
const DraftTTL = 24 * time.Hour

// Draft is the serializable in-progress calculator state a user can resume
// after a reload. Freshness is judged against a caller-supplied clock so the
// engine itself never reads the wall clock.
type Draft struct {
	Snapshot Snapshot  `json:"snapshot"`
	SavedAt  time.Time `json:"savedAt"`
}

// Fresh reports whether the draft is still within its expiry window at the
// given instant.
func (d Draft) Fresh(now time.Time) bool {
	if d.SavedAt.IsZero() {
		return false
	}
	age := now.Sub(d.SavedAt)
	return age >= 0 && age <= DraftTTL
}
