package canned

// State is a stage of a reconciliation run.
type State int

const (
	// StateOpen means the transaction is open and nothing is checked yet.
	StateOpen State = iota

	// StateValidated means every record has a known tool.
	StateValidated

	// StateUpserted means all rows are inserted in the open transaction.
	StateUpserted

	// StatePending means staging tables are written and the run waits
	// for the commit decision.
	StatePending

	// StateCommitted is a final state of a successful run.
	StateCommitted

	// StateRolledBack is a final state of a declined or failed run.
	StateRolledBack
)

var stateNames = map[State]string{
	StateOpen:       "OPEN",
	StateValidated:  "VALIDATED",
	StateUpserted:   "UPSERTED",
	StatePending:    "PENDING_CONFIRMATION",
	StateCommitted:  "COMMITTED",
	StateRolledBack: "ROLLED_BACK",
}

// String returns the name of the state.
func (s State) String() string {
	if res, ok := stateNames[s]; ok {
		return res
	}
	return "UNKNOWN"
}

// IsFinal is true for states that end a run.
func (s State) IsFinal() bool {
	return s == StateCommitted || s == StateRolledBack
}

// Next reports if a run may move from s to next.
// Any non-final state may roll back.
func (s State) Next(next State) bool {
	if s.IsFinal() {
		return false
	}
	if next == StateRolledBack {
		return true
	}
	return next == s+1
}

// Input is one table of canned analyses to reconcile.
type Input struct {
	// Name identifies the input in staging file names.
	Name string

	Records []Record
}

// Result describes a finished reconciliation run.
type Result struct {
	RunID   string
	State   State
	Summary Summary
}
