package domain

import "time"

// Step is one named milestone in a project's fixed ordered template.
// Order indexes are contiguous from 1..N per project. The progression rule
// keeps exactly the steps with OrderIndex <= current target completed; there
// is no out-of-order completion state.
type Step struct {
	ProjectID   string
	OrderIndex  int
	Label       string
	Completed   bool
	CompletedAt *time.Time
}
