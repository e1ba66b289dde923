package domain

// ReminderOutcome is the per-recipient result of one reminder run. A single
// recipient failing never fails the run; callers get the full list.
type ReminderOutcome struct {
	Recipient string `json:"recipient"`
	Projects  int    `json:"projects"`
	OK        bool   `json:"ok"`
	Retried   bool   `json:"retried,omitempty"`
	Reason    string `json:"reason,omitempty"`
}
