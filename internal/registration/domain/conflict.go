package domain

// FindConflict scans accepted courses in insertion order and returns the
// first one that conflicts with the candidate, or nil when the candidate
// fits. The scan order makes conflict reporting deterministic: the earliest
// accepted course wins the report.
func FindConflict(candidate *Course, accepted []*Course) *Course {
	for _, course := range accepted {
		if course.ConflictsWith(candidate) {
			return course
		}
	}
	return nil
}

// ProposalResult is the outcome of proposing a candidate against a plan.
// A rejection is a normal outcome, not an error: the caller decides whether
// to discard the candidate or force-commit it anyway.
type ProposalResult struct {
	Accepted      bool
	ConflictsWith *Course
}
