package sprayrequest

// Status is a spray request's lifecycle state. The string values are the
// canonical persisted form.
type Status string

const (
	StatusPending      Status = "Pending"
	StatusAccepted     Status = "Accepted"
	StatusInProgress   Status = "In Progress"
	StatusCompleted    Status = "Completed"
	StatusRejected     Status = "Rejected"
	StatusCanceled     Status = "Canceled"
	StatusOutOfService Status = "Out of Service"
	StatusRescheduled  Status = "Rescheduled"
	StatusPlaced       Status = "Placed"
	StatusPaid         Status = "Paid"
	StatusOnHold       Status = "On Hold"
)

// fallbackColor is used for statuses outside the enum, matching the badge
// color of Canceled.
const fallbackColor = "#6b7280"

var statusColors = map[Status]string{
	StatusPending:      "#eab308",
	StatusAccepted:     "#3b82f6",
	StatusInProgress:   "#6366f1",
	StatusCompleted:    "#10b981",
	StatusRejected:     "#ef4444",
	StatusCanceled:     "#6b7280",
	StatusOutOfService: "#f97316",
	StatusRescheduled:  "#8b5cf6",
	StatusPlaced:       "#14b8a6",
	StatusPaid:         "#059669",
	StatusOnHold:       "#ec4899",
}

func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusAccepted,
		StatusInProgress,
		StatusCompleted,
		StatusRejected,
		StatusCanceled,
		StatusOutOfService,
		StatusRescheduled,
		StatusPlaced,
		StatusPaid,
		StatusOnHold,
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusColors[s]
	return ok
}

// IsTerminal reports whether no further guarded transition is allowed out of s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

// Color returns the fixed display color for the status badge.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return fallbackColor
}

// CanTransitionTo reports whether the guarded state machine permits moving
// from s to next. Any member status is reachable from any non-terminal one;
// terminal statuses accept no further transitions.
func (s Status) CanTransitionTo(next Status) bool {
	return next.IsValid() && !s.IsTerminal()
}
