package analytics

import "time"

// CountUnit is the entity actually counted for a criteria. Counting the wrong
// unit either misses qualifying placements or double-counts employees, so the
// population counter resolves it once and both summary and series share the
// result.
type CountUnit string

const (
	// UnitEmployee counts distinct employees (no organizational scope).
	UnitEmployee CountUnit = "employee"
	// UnitAssignment counts distinct position assignments (position or
	// department scope without a placement-level filter).
	UnitAssignment CountUnit = "assignment"
	// UnitPlacement counts distinct staff placements (headquarter or project
	// scope; one employee may hold several qualifying placements).
	UnitPlacement CountUnit = "placement"
)

// StatusPolicy selects which employment statuses a count admits.
type StatusPolicy string

const (
	StatusAny       StatusPolicy = "any"
	StatusActive    StatusPolicy = "active"
	StatusDismissed StatusPolicy = "dismissed"
)

// ApprovalState selects which vacation/permission requests a count admits.
// Pending and approved are never summed in one count.
type ApprovalState string

const (
	StateApproved ApprovalState = "APPROVED"
	StatePending  ApprovalState = "PENDING"
)

// BondPredicate is the resolved bond condition: all reference-date arithmetic
// is done by the counter so the store adapter only compares columns.
type BondPredicate struct {
	Required bool
	TypeID   *string
	// ActiveOnOrAfter requires date_limit >= reference date.
	ActiveOnOrAfter *time.Time
	// ExpiredBefore requires date_limit < reference date; ExpiredOnOrAfter
	// additionally lower-bounds by the window start when one was supplied.
	ExpiredBefore    *time.Time
	ExpiredOnOrAfter *time.Time
}

// AbsencePredicate requires an absence request (vacation or permission) in
// exactly one approval state, optionally overlapping the observation window.
type AbsencePredicate struct {
	Required     bool
	State        ApprovalState
	OverlapStart *time.Time
	OverlapEnd   *time.Time
}

// Predicate is the store-level form of a Criteria: every ambiguity (unit of
// count, status policy, which date column a bound applies to, bond reference
// dates, approval states) has been resolved. The store adapter alone knows
// how to translate it into a concrete query.
type Predicate struct {
	Unit   CountUnit
	Status StatusPolicy

	// RegisteredOnOrBefore bounds date_register for active/unspecified
	// counts: headcount as of the end of the observation window.
	RegisteredOnOrBefore *time.Time
	// DismissedFrom/DismissedTo bound date_end for dismissed counts:
	// terminations are events, counted within the window.
	DismissedFrom *time.Time
	DismissedTo   *time.Time

	HeadquarterID *string
	ProjectID     *string
	PositionID    *string
	DepartmentID  *string

	Bond       BondPredicate
	Vacation   AbsencePredicate
	Permission AbsencePredicate
}
