package analytics

import "time"

// Granularity is the bucket size used when slicing a date range into categories.
type Granularity string

const (
	GranularityDay   Granularity = "DAY"
	GranularityWeek  Granularity = "WEEK"
	GranularityMonth Granularity = "MONTH"
	GranularityYear  Granularity = "YEAR"
)

// ParseGranularity validates a group_by value coming from the caller.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityYear:
		return Granularity(s), nil
	}
	return "", ErrInvalidGranularity
}

// Criteria describes one analytical question: which slice of the workforce to
// count, over which observation window. It is a value type: callers derive new
// criteria with the With* methods instead of mutating an existing one, so a
// criteria shared across parallel bucket computations is never written to.
type Criteria struct {
	DateStart *time.Time
	DateEnd   *time.Time

	// Dismissed is tri-state: true counts terminated employees only, false
	// active only, nil both (the summary then carries one row per status).
	Dismissed *bool

	// Organizational scope, all optional and independently combinable.
	HeadquarterID *string
	ProjectID     *string
	PositionID    *string
	DepartmentID  *string

	// Bond scope.
	HasAnyBond     bool
	HasActiveBond  bool
	HasExpiredBond bool
	BondTypeID     *string

	// Row-forcing flags: set by the summary assembler, never by callers.
	HasVacation   bool
	HasPermission bool

	// State toggles: default counts APPROVED requests, true counts PENDING.
	// Exactly one state is counted per call.
	PendingVacationsOnly   bool
	PendingPermissionsOnly bool

	GroupBy *Granularity
}

// Validate rejects malformed windows. A reversed range is a caller input
// error, never silently corrected.
func (c Criteria) Validate() error {
	if c.DateStart != nil && c.DateEnd != nil && c.DateEnd.Before(*c.DateStart) {
		return ErrInvalidDateRange
	}
	return nil
}

// HasWindow reports whether both window bounds are present.
func (c Criteria) HasWindow() bool {
	return c.DateStart != nil && c.DateEnd != nil
}

// HasOrgScope reports whether any organizational filter is set.
func (c Criteria) HasOrgScope() bool {
	return c.HeadquarterID != nil || c.ProjectID != nil || c.PositionID != nil || c.DepartmentID != nil
}

// HasPlacementScope reports whether the filter reaches the placement level
// (headquarter or project).
func (c Criteria) HasPlacementScope() bool {
	return c.HeadquarterID != nil || c.ProjectID != nil
}

// HasBondScope reports whether any bond filter is set.
func (c Criteria) HasBondScope() bool {
	return c.HasAnyBond || c.HasActiveBond || c.HasExpiredBond || c.BondTypeID != nil
}

// WithWindow returns a copy of c scoped to [start, end]. This is the only
// derivation the series builder performs per bucket.
func (c Criteria) WithWindow(start, end time.Time) Criteria {
	c.DateStart = &start
	c.DateEnd = &end
	return c
}

// WithDismissed returns a copy of c with the status condition forced.
func (c Criteria) WithDismissed(dismissed bool) Criteria {
	c.Dismissed = &dismissed
	return c
}

// WithAnyBond returns a copy of c that additionally requires at least one bond.
func (c Criteria) WithAnyBond() Criteria {
	c.HasAnyBond = true
	return c
}

// WithVacation returns a copy of c that additionally requires a vacation
// request in the selected approval state.
func (c Criteria) WithVacation() Criteria {
	c.HasVacation = true
	return c
}

// WithPermission is the permission counterpart of WithVacation.
func (c Criteria) WithPermission() Criteria {
	c.HasPermission = true
	return c
}
