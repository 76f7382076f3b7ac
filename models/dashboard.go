package models

// DashboardStats aggregates the counters shown on the dashboard. Counts of
// different kinds may reflect slightly different points in time.
type DashboardStats struct {
	User           User
	Counts         map[ResourceKind]int
	UnreadMessages int

	// Errors holds the kinds whose list request failed. A failed kind has no
	// entry in Counts.
	Errors map[ResourceKind]error
}

// CountUnread returns the number of messages whose read flag is false.
func CountUnread(messages []Entity) int {
	n := 0
	for _, m := range messages {
		if !m.Bool(FieldRead) {
			n++
		}
	}
	return n
}
