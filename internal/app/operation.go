package app

// Operation tracks one CLI invocation for the run log. The run ID ties every
// log line of a run together; status flips to "error" when the operation
// fails.
type Operation struct {
	RunID      string
	Name       string
	Parameters string
	Status     string // "success" or "error"
}

// NewOperation creates a new operation record with status "success".
func NewOperation(runID, name, parameters string) *Operation {
	return &Operation{
		RunID:      runID,
		Name:       name,
		Parameters: parameters,
		Status:     "success",
	}
}

// Fail marks the operation as failed.
func (op *Operation) Fail() { op.Status = "error" }
