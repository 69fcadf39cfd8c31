package constants

type TaskStatus string

const (
	StatusPending     TaskStatus = "pending"
	StatusOnHold      TaskStatus = "onHold"
	StatusInProgress  TaskStatus = "inProgress"
	StatusUnderReview TaskStatus = "underReview"
	StatusCompleted   TaskStatus = "completed"
)

// TaskStatuses lists every workflow state. Any state may transition to any
// other; there is no adjacency restriction.
var TaskStatuses = []TaskStatus{
	StatusPending,
	StatusOnHold,
	StatusInProgress,
	StatusUnderReview,
	StatusCompleted,
}

func (s TaskStatus) Valid() bool {
	for _, known := range TaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}
