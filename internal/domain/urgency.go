package domain

// Urgency is the derived classification of a task relative to the current
// date. It is computed on demand and never stored.
type Urgency string

const (
	UrgencyInTime  Urgency = "InTime"
	UrgencyDue     Urgency = "Due"
	UrgencyOverdue Urgency = "Overdue"
)

// String returns the urgency name.
func (u Urgency) String() string {
	return string(u)
}

// ClassifyUrgency classifies a task date against the evaluation date:
// Due on the same day, InTime for a future date, Overdue for a past one.
func ClassifyUrgency(today, taskDate Date) Urgency {
	delta := today.DaysUntil(taskDate)
	switch {
	case delta == 0:
		return UrgencyDue
	case delta > 0:
		return UrgencyInTime
	default:
		return UrgencyOverdue
	}
}
