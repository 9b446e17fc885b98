package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rrhh-labs/workforce-backend-go/internal/domain/analytics"
)

// Counter is the population counter: the single primitive behind every
// summary row and every series data point. It resolves a criteria into a
// store-level predicate and delegates the count to the store.
type Counter struct {
	repo analytics.PopulationRepository
	now  func() time.Time
}

func NewCounter(repo analytics.PopulationRepository) *Counter {
	return &Counter{repo: repo, now: time.Now}
}

// Count evaluates one criteria to one integer. A reversed window is rejected
// here, before the store is touched; an empty population is a valid zero.
func (c *Counter) Count(ctx context.Context, criteria analytics.Criteria) (int64, error) {
	p, err := ResolvePredicate(criteria, c.now())
	if err != nil {
		return 0, err
	}
	n, err := c.repo.Count(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("count %s population: %w", p.Unit, err)
	}
	return n, nil
}

// ResolvePredicate turns a criteria into its store-level form. The same
// resolution backs summary rows and series buckets, so both callers share one
// interpretation of every filter combination.
func ResolvePredicate(criteria analytics.Criteria, now time.Time) (analytics.Predicate, error) {
	if err := criteria.Validate(); err != nil {
		return analytics.Predicate{}, err
	}

	p := analytics.Predicate{
		Unit:          resolveUnit(criteria),
		Status:        resolveStatus(criteria),
		HeadquarterID: criteria.HeadquarterID,
		ProjectID:     criteria.ProjectID,
		PositionID:    criteria.PositionID,
		DepartmentID:  criteria.DepartmentID,
	}

	// Date bounds apply to the registration date for active/unspecified
	// counts and to the termination date for dismissed counts, never both.
	switch p.Status {
	case analytics.StatusDismissed:
		if criteria.DateStart != nil {
			from := startOfDay(*criteria.DateStart)
			p.DismissedFrom = &from
		}
		if criteria.DateEnd != nil {
			to := endOfDay(*criteria.DateEnd)
			p.DismissedTo = &to
		}
	default:
		// Headcount as of the end of the window: every open record
		// registered on or before the window end counts, so series values
		// accumulate across buckets.
		if criteria.DateEnd != nil {
			to := endOfDay(*criteria.DateEnd)
			p.RegisteredOnOrBefore = &to
		}
	}

	if criteria.HasBondScope() {
		p.Bond = resolveBond(criteria, now)
	}
	if criteria.HasVacation {
		p.Vacation = resolveAbsence(criteria, criteria.PendingVacationsOnly)
	}
	if criteria.HasPermission {
		p.Permission = resolveAbsence(criteria, criteria.PendingPermissionsOnly)
	}
	return p, nil
}

// resolveUnit applies the unit-of-count switch: a headquarter or project
// filter reaches the placement level, position or department alone reaches
// the assignment level, no organizational scope counts employees.
func resolveUnit(criteria analytics.Criteria) analytics.CountUnit {
	switch {
	case criteria.HasPlacementScope():
		return analytics.UnitPlacement
	case criteria.HasOrgScope():
		return analytics.UnitAssignment
	default:
		return analytics.UnitEmployee
	}
}

func resolveStatus(criteria analytics.Criteria) analytics.StatusPolicy {
	if criteria.Dismissed == nil {
		return analytics.StatusAny
	}
	if *criteria.Dismissed {
		return analytics.StatusDismissed
	}
	return analytics.StatusActive
}

// resolveBond fixes the reference date: the window end when one was supplied,
// otherwise now. An expired-bond filter with a window start means expired
// within the window; without one it is unbounded below.
func resolveBond(criteria analytics.Criteria, now time.Time) analytics.BondPredicate {
	ref := now
	if criteria.DateEnd != nil {
		ref = endOfDay(*criteria.DateEnd)
	}

	b := analytics.BondPredicate{
		Required: true,
		TypeID:   criteria.BondTypeID,
	}
	if criteria.HasActiveBond {
		activeRef := ref
		b.ActiveOnOrAfter = &activeRef
	}
	if criteria.HasExpiredBond {
		expiredRef := ref
		b.ExpiredBefore = &expiredRef
		if criteria.DateStart != nil {
			from := startOfDay(*criteria.DateStart)
			b.ExpiredOnOrAfter = &from
		}
	}
	return b
}

// resolveAbsence selects exactly one approval state and, when a window is
// present, requires the request period to overlap it.
func resolveAbsence(criteria analytics.Criteria, pendingOnly bool) analytics.AbsencePredicate {
	a := analytics.AbsencePredicate{
		Required: true,
		State:    analytics.StateApproved,
	}
	if pendingOnly {
		a.State = analytics.StatePending
	}
	if criteria.DateStart != nil {
		from := startOfDay(*criteria.DateStart)
		a.OverlapStart = &from
	}
	if criteria.DateEnd != nil {
		to := endOfDay(*criteria.DateEnd)
		a.OverlapEnd = &to
	}
	return a
}
