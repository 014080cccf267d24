package types

// Priority is an ordered urgency class for status report items.
// Lower ordinal means more urgent.
type Priority int

const (
	PriorityCritical Priority = iota + 1 // direct mentions
	PriorityHigh                         // direct messages
	PriorityMedium                       // replies in threads you participated in
	PriorityLow                          // ambient channel messages
)

// String returns the human-readable label of the priority
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "CRITICAL"
	case PriorityHigh:
		return "HIGH"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityLow:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// AllPriorities returns the priorities in urgency order
func AllPriorities() []Priority {
	return []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}
}
