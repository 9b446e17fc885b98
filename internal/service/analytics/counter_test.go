package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rrhh-labs/workforce-backend-go/internal/domain/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestResolvePredicate_UnitOfCountSwitch(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name     string
		criteria analytics.Criteria
		want     analytics.CountUnit
	}{
		{"no org scope counts employees", analytics.Criteria{}, analytics.UnitEmployee},
		{"position counts assignments", analytics.Criteria{PositionID: strPtr("pos-1")}, analytics.UnitAssignment},
		{"department counts assignments", analytics.Criteria{DepartmentID: strPtr("dep-1")}, analytics.UnitAssignment},
		{"headquarter counts placements", analytics.Criteria{HeadquarterID: strPtr("hq-1")}, analytics.UnitPlacement},
		{"project counts placements", analytics.Criteria{ProjectID: strPtr("prj-1")}, analytics.UnitPlacement},
		{
			"headquarter wins over position",
			analytics.Criteria{HeadquarterID: strPtr("hq-1"), PositionID: strPtr("pos-1")},
			analytics.UnitPlacement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := ResolvePredicate(tt.criteria, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Unit)
		})
	}
}

func TestResolvePredicate_DateColumnNeverBothFiltered(t *testing.T) {
	t.Parallel()

	start, end := date(2025, 1, 1), date(2025, 3, 31)

	// Active/unspecified counts bound the registration date only: headcount
	// as of the window end.
	p, err := ResolvePredicate(analytics.Criteria{DateStart: &start, DateEnd: &end}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, analytics.StatusAny, p.Status)
	require.NotNil(t, p.RegisteredOnOrBefore)
	assert.Equal(t, endOfDay(end), *p.RegisteredOnOrBefore)
	assert.Nil(t, p.DismissedFrom)
	assert.Nil(t, p.DismissedTo)

	// Dismissed counts bound the termination date only.
	p, err = ResolvePredicate(analytics.Criteria{DateStart: &start, DateEnd: &end, Dismissed: boolPtr(true)}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, analytics.StatusDismissed, p.Status)
	assert.Nil(t, p.RegisteredOnOrBefore)
	require.NotNil(t, p.DismissedFrom)
	require.NotNil(t, p.DismissedTo)
	assert.Equal(t, startOfDay(start), *p.DismissedFrom)
	assert.Equal(t, endOfDay(end), *p.DismissedTo)
}

func TestResolvePredicate_BondReferenceDates(t *testing.T) {
	t.Parallel()

	now := date(2025, 6, 15)
	start, end := date(2025, 1, 1), date(2025, 3, 31)

	// Window end wins over now as the reference date.
	p, err := ResolvePredicate(analytics.Criteria{DateStart: &start, DateEnd: &end, HasActiveBond: true}, now)
	require.NoError(t, err)
	require.True(t, p.Bond.Required)
	require.NotNil(t, p.Bond.ActiveOnOrAfter)
	assert.Equal(t, endOfDay(end), *p.Bond.ActiveOnOrAfter)

	// No window: reference date is now.
	p, err = ResolvePredicate(analytics.Criteria{HasActiveBond: true}, now)
	require.NoError(t, err)
	require.NotNil(t, p.Bond.ActiveOnOrAfter)
	assert.Equal(t, now, *p.Bond.ActiveOnOrAfter)

	// Expired with a window start is expired-within-window.
	p, err = ResolvePredicate(analytics.Criteria{DateStart: &start, DateEnd: &end, HasExpiredBond: true}, now)
	require.NoError(t, err)
	require.NotNil(t, p.Bond.ExpiredBefore)
	assert.Equal(t, endOfDay(end), *p.Bond.ExpiredBefore)
	require.NotNil(t, p.Bond.ExpiredOnOrAfter)
	assert.Equal(t, startOfDay(start), *p.Bond.ExpiredOnOrAfter)

	// Expired without a window start is unbounded below.
	p, err = ResolvePredicate(analytics.Criteria{HasExpiredBond: true}, now)
	require.NoError(t, err)
	require.NotNil(t, p.Bond.ExpiredBefore)
	assert.Equal(t, now, *p.Bond.ExpiredBefore)
	assert.Nil(t, p.Bond.ExpiredOnOrAfter)

	// A bond type alone still requires a bond.
	p, err = ResolvePredicate(analytics.Criteria{BondTypeID: strPtr("bt-1")}, now)
	require.NoError(t, err)
	assert.True(t, p.Bond.Required)
	assert.Equal(t, "bt-1", *p.Bond.TypeID)
}

func TestResolvePredicate_ApprovalStateExclusive(t *testing.T) {
	t.Parallel()

	now := time.Now()

	p, err := ResolvePredicate(analytics.Criteria{HasVacation: true}, now)
	require.NoError(t, err)
	require.True(t, p.Vacation.Required)
	assert.Equal(t, analytics.StateApproved, p.Vacation.State)

	p, err = ResolvePredicate(analytics.Criteria{HasVacation: true, PendingVacationsOnly: true}, now)
	require.NoError(t, err)
	assert.Equal(t, analytics.StatePending, p.Vacation.State)

	p, err = ResolvePredicate(analytics.Criteria{HasPermission: true, PendingPermissionsOnly: true}, now)
	require.NoError(t, err)
	require.True(t, p.Permission.Required)
	assert.Equal(t, analytics.StatePending, p.Permission.State)
	assert.False(t, p.Vacation.Required)
}

func TestCounter_RejectsReversedRangeBeforeStore(t *testing.T) {
	t.Parallel()

	repo := &fakePopulationRepo{fn: func(analytics.Predicate) (int64, error) {
		t.Fatal("store must not be reached for an invalid range")
		return 0, nil
	}}
	counter := NewCounter(repo)

	start, end := date(2025, 3, 1), date(2025, 1, 1)
	_, err := counter.Count(context.Background(), analytics.Criteria{DateStart: &start, DateEnd: &end})
	assert.ErrorIs(t, err, analytics.ErrInvalidDateRange)
}

func TestCounter_WrapsStoreError(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection reset")
	repo := &fakePopulationRepo{fn: func(analytics.Predicate) (int64, error) {
		return 0, storeErr
	}}
	counter := NewCounter(repo)

	_, err := counter.Count(context.Background(), analytics.Criteria{})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "employee")
}

func TestCounter_ZeroIsNotAnError(t *testing.T) {
	t.Parallel()

	repo := &fakePopulationRepo{fn: func(analytics.Predicate) (int64, error) { return 0, nil }}
	counter := NewCounter(repo)

	n, err := counter.Count(context.Background(), analytics.Criteria{})
	require.NoError(t, err)
	assert.Zero(t, n)
}
