package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/rrhh-labs/workforce-backend-go/internal/domain/analytics"
	"github.com/rrhh-labs/workforce-backend-go/internal/pkg/database"
)

type populationRepositoryImpl struct {
	db *database.DB
}

func NewPopulationRepository(db *database.DB) analytics.PopulationRepository {
	return &populationRepositoryImpl{db: db}
}

// Count evaluates one resolved predicate to one integer. All predicate
// semantics (unit of count, status policy, date columns, reference dates)
// were fixed by the engine; this adapter only translates them into SQL.
func (r *populationRepositoryImpl) Count(ctx context.Context, p analytics.Predicate) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query, args := buildCountQuery(p)

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s population: %w", p.Unit, err)
	}
	return count, nil
}

// buildCountQuery composes the count query for a predicate. The counted
// column follows the unit of count: distinct employees, distinct position
// assignments, or distinct staff placements.
func buildCountQuery(p analytics.Predicate) (string, []interface{}) {
	conditions := []string{"e.deleted_at IS NULL"}
	args := []interface{}{}
	argIdx := 1

	var target, joins string
	switch p.Unit {
	case analytics.UnitAssignment:
		target = "COUNT(DISTINCT a.id)"
		joins = " JOIN assignments a ON a.employee_id = e.id AND a.deleted_at IS NULL"
	case analytics.UnitPlacement:
		target = "COUNT(DISTINCT pl.id)"
		joins = " JOIN assignments a ON a.employee_id = e.id AND a.deleted_at IS NULL" +
			" JOIN placements pl ON pl.assignment_id = a.id AND pl.deleted_at IS NULL"
	default:
		target = "COUNT(DISTINCT e.id)"
	}

	switch p.Status {
	case analytics.StatusActive:
		conditions = append(conditions, "e.status = 'ACTIVE'", "e.date_end IS NULL")
	case analytics.StatusDismissed:
		conditions = append(conditions, "e.status = 'DISMISSAL'", "e.date_end IS NOT NULL")
	default:
		conditions = append(conditions, "e.status IN ('ACTIVE', 'DISMISSAL')")
	}

	if p.RegisteredOnOrBefore != nil {
		conditions = append(conditions, fmt.Sprintf("e.date_register <= $%d", argIdx))
		args = append(args, *p.RegisteredOnOrBefore)
		argIdx++
	}
	if p.DismissedFrom != nil {
		conditions = append(conditions, fmt.Sprintf("e.date_end >= $%d", argIdx))
		args = append(args, *p.DismissedFrom)
		argIdx++
	}
	if p.DismissedTo != nil {
		conditions = append(conditions, fmt.Sprintf("e.date_end <= $%d", argIdx))
		args = append(args, *p.DismissedTo)
		argIdx++
	}

	if p.PositionID != nil {
		conditions = append(conditions, fmt.Sprintf("a.position_id = $%d", argIdx))
		args = append(args, *p.PositionID)
		argIdx++
	}
	if p.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("a.department_id = $%d", argIdx))
		args = append(args, *p.DepartmentID)
		argIdx++
	}
	if p.HeadquarterID != nil {
		conditions = append(conditions, fmt.Sprintf("pl.headquarter_id = $%d", argIdx))
		args = append(args, *p.HeadquarterID)
		argIdx++
	}
	if p.ProjectID != nil {
		conditions = append(conditions, fmt.Sprintf("pl.project_id = $%d", argIdx))
		args = append(args, *p.ProjectID)
		argIdx++
	}

	if p.Bond.Required {
		bondConditions := []string{"b.employee_id = e.id", "b.deleted_at IS NULL"}
		if p.Bond.TypeID != nil {
			bondConditions = append(bondConditions, fmt.Sprintf("b.bond_type_id = $%d", argIdx))
			args = append(args, *p.Bond.TypeID)
			argIdx++
		}
		if p.Bond.ActiveOnOrAfter != nil {
			bondConditions = append(bondConditions, fmt.Sprintf("b.date_limit >= $%d", argIdx))
			args = append(args, *p.Bond.ActiveOnOrAfter)
			argIdx++
		}
		if p.Bond.ExpiredBefore != nil {
			bondConditions = append(bondConditions, fmt.Sprintf("b.date_limit < $%d", argIdx))
			args = append(args, *p.Bond.ExpiredBefore)
			argIdx++
		}
		if p.Bond.ExpiredOnOrAfter != nil {
			bondConditions = append(bondConditions, fmt.Sprintf("b.date_limit >= $%d", argIdx))
			args = append(args, *p.Bond.ExpiredOnOrAfter)
			argIdx++
		}
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM bonds b WHERE "+strings.Join(bondConditions, " AND ")+")")
	}

	if p.Vacation.Required {
		var vacationConditions []string
		vacationConditions, args, argIdx = absenceConditions("v", p.Vacation, args, argIdx)
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM vacations v WHERE "+strings.Join(vacationConditions, " AND ")+")")
	}
	if p.Permission.Required {
		var permissionConditions []string
		permissionConditions, args, _ = absenceConditions("pm", p.Permission, args, argIdx)
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM permissions pm WHERE "+strings.Join(permissionConditions, " AND ")+")")
	}

	query := fmt.Sprintf("SELECT %s FROM employees e%s WHERE %s", target, joins, strings.Join(conditions, " AND "))
	return query, args
}

// absenceConditions builds the EXISTS body shared by vacations and
// permissions: exactly one approval state, optionally overlapping the window.
func absenceConditions(alias string, a analytics.AbsencePredicate, args []interface{}, argIdx int) ([]string, []interface{}, int) {
	conditions := []string{
		fmt.Sprintf("%s.employee_id = e.id", alias),
		fmt.Sprintf("%s.deleted_at IS NULL", alias),
	}

	conditions = append(conditions, fmt.Sprintf("%s.state = $%d", alias, argIdx))
	args = append(args, string(a.State))
	argIdx++

	if a.OverlapEnd != nil {
		conditions = append(conditions, fmt.Sprintf("%s.date_start <= $%d", alias, argIdx))
		args = append(args, *a.OverlapEnd)
		argIdx++
	}
	if a.OverlapStart != nil {
		conditions = append(conditions, fmt.Sprintf("%s.date_end >= $%d", alias, argIdx))
		args = append(args, *a.OverlapStart)
		argIdx++
	}
	return conditions, args, argIdx
}
