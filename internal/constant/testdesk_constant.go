package constant

// Step execution statuses. These are the only values the record store may
// carry in steps.status.
const (
	StepStatusPending = "PENDING"
	StepStatusPassed  = "PASSED"
	StepStatusFailed  = "FAILED"
	StepStatusBlocked = "BLOCKED"
)

// Defect lifecycle statuses.
const (
	DefectStatusOpen   = "OPEN"
	DefectStatusClosed = "CLOSED"
)
