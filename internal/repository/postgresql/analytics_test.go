package postgresql

import (
	"testing"
	"time"

	"github.com/rrhh-labs/workforce-backend-go/internal/domain/analytics"
	"github.com/stretchr/testify/assert"
)

func str(s string) *string { return &s }

func ts(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	return &t
}

func TestBuildCountQuery_EmployeeUnit(t *testing.T) {
	t.Parallel()

	query, args := buildCountQuery(analytics.Predicate{
		Unit:   analytics.UnitEmployee,
		Status: analytics.StatusAny,
	})

	assert.Contains(t, query, "SELECT COUNT(DISTINCT e.id) FROM employees e WHERE")
	assert.NotContains(t, query, "JOIN")
	assert.Contains(t, query, "e.status IN ('ACTIVE', 'DISMISSAL')")
	assert.Empty(t, args)
}

func TestBuildCountQuery_AssignmentUnit(t *testing.T) {
	t.Parallel()

	query, args := buildCountQuery(analytics.Predicate{
		Unit:       analytics.UnitAssignment,
		Status:     analytics.StatusActive,
		PositionID: str("pos-1"),
	})

	assert.Contains(t, query, "COUNT(DISTINCT a.id)")
	assert.Contains(t, query, "JOIN assignments a ON a.employee_id = e.id")
	assert.NotContains(t, query, "JOIN placements")
	assert.Contains(t, query, "e.status = 'ACTIVE'")
	assert.Contains(t, query, "e.date_end IS NULL")
	assert.Contains(t, query, "a.position_id = $1")
	assert.Equal(t, []interface{}{"pos-1"}, args)
}

func TestBuildCountQuery_PlacementUnit(t *testing.T) {
	t.Parallel()

	query, args := buildCountQuery(analytics.Predicate{
		Unit:          analytics.UnitPlacement,
		Status:        analytics.StatusAny,
		HeadquarterID: str("hq-1"),
		PositionID:    str("pos-1"),
	})

	assert.Contains(t, query, "COUNT(DISTINCT pl.id)")
	assert.Contains(t, query, "JOIN placements pl ON pl.assignment_id = a.id")
	assert.Contains(t, query, "a.position_id = $1")
	assert.Contains(t, query, "pl.headquarter_id = $2")
	assert.Len(t, args, 2)
}

func TestBuildCountQuery_DateColumns(t *testing.T) {
	t.Parallel()

	query, args := buildCountQuery(analytics.Predicate{
		Unit:                 analytics.UnitEmployee,
		Status:               analytics.StatusAny,
		RegisteredOnOrBefore: ts(2025, 3, 31),
	})
	assert.Contains(t, query, "e.date_register <= $1")
	assert.NotContains(t, query, "e.date_end >=")
	assert.Len(t, args, 1)

	query, args = buildCountQuery(analytics.Predicate{
		Unit:          analytics.UnitEmployee,
		Status:        analytics.StatusDismissed,
		DismissedFrom: ts(2025, 1, 1),
		DismissedTo:   ts(2025, 3, 31),
	})
	assert.Contains(t, query, "e.status = 'DISMISSAL'")
	assert.Contains(t, query, "e.date_end >= $1")
	assert.Contains(t, query, "e.date_end <= $2")
	assert.NotContains(t, query, "e.date_register")
	assert.Len(t, args, 2)
}

func TestBuildCountQuery_BondSubquery(t *testing.T) {
	t.Parallel()

	query, args := buildCountQuery(analytics.Predicate{
		Unit:   analytics.UnitEmployee,
		Status: analytics.StatusAny,
		Bond: analytics.BondPredicate{
			Required:         true,
			TypeID:           str("bt-1"),
			ExpiredBefore:    ts(2025, 3, 31),
			ExpiredOnOrAfter: ts(2025, 1, 1),
		},
	})

	assert.Contains(t, query, "EXISTS (SELECT 1 FROM bonds b WHERE")
	assert.Contains(t, query, "b.bond_type_id = $1")
	assert.Contains(t, query, "b.date_limit < $2")
	assert.Contains(t, query, "b.date_limit >= $3")
	assert.Len(t, args, 3)
}

func TestBuildCountQuery_AbsenceSubqueries(t *testing.T) {
	t.Parallel()

	query, args := buildCountQuery(analytics.Predicate{
		Unit:   analytics.UnitEmployee,
		Status: analytics.StatusAny,
		Vacation: analytics.AbsencePredicate{
			Required:     true,
			State:        analytics.StatePending,
			OverlapStart: ts(2025, 1, 1),
			OverlapEnd:   ts(2025, 3, 31),
		},
		Permission: analytics.AbsencePredicate{
			Required: true,
			State:    analytics.StateApproved,
		},
	})

	assert.Contains(t, query, "EXISTS (SELECT 1 FROM vacations v WHERE")
	assert.Contains(t, query, "v.state = $1")
	assert.Contains(t, query, "v.date_start <= $2")
	assert.Contains(t, query, "v.date_end >= $3")
	assert.Contains(t, query, "EXISTS (SELECT 1 FROM permissions pm WHERE")
	assert.Contains(t, query, "pm.state = $4")
	assert.Equal(t, "PENDING", args[0])
	assert.Equal(t, "APPROVED", args[3])
	assert.Len(t, args, 4)
}

func TestBuildCountQuery_ArgPlaceholdersStayAligned(t *testing.T) {
	t.Parallel()

	// Every filter at once: placeholder numbering must match the argument
	// slice exactly.
	_, args := buildCountQuery(analytics.Predicate{
		Unit:                 analytics.UnitPlacement,
		Status:               analytics.StatusAny,
		RegisteredOnOrBefore: ts(2025, 3, 31),
		HeadquarterID:        str("hq-1"),
		ProjectID:            str("prj-1"),
		PositionID:           str("pos-1"),
		DepartmentID:         str("dep-1"),
		Bond: analytics.BondPredicate{
			Required:        true,
			TypeID:          str("bt-1"),
			ActiveOnOrAfter: ts(2025, 3, 31),
		},
		Vacation:   analytics.AbsencePredicate{Required: true, State: analytics.StateApproved},
		Permission: analytics.AbsencePredicate{Required: true, State: analytics.StatePending},
	})

	assert.Len(t, args, 9)
}
