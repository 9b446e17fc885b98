package analytics

import "context"

// PopulationRepository is the read-only store collaborator: it evaluates one
// resolved predicate to one count of the applicable unit. Implementations
// must be safe for concurrent use; the engine fans out many counts per
// request.
type PopulationRepository interface {
	Count(ctx context.Context, p Predicate) (int64, error)
}
