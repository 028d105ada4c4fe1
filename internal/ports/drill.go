package ports

import (
	"context"
	"io"

	"github.com/advancedcpp/drillbox/internal/domain"
)

// Drill is a runnable, self-contained exercise. Run writes human-readable
// progress to out and returns the machine-readable facts of the run.
// Implementations must honor ctx cancellation on every blocking path and
// must not retain goroutines past return.
type Drill interface {
	Info() domain.DrillInfo
	Run(ctx context.Context, p domain.Params, out io.Writer) (map[string]any, error)
}

// DrillCatalog exposes the set of registered drills.
type DrillCatalog interface {
	Lookup(id string) (Drill, bool)
	All() []Drill
}
