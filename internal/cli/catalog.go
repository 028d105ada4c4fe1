package cli

import (
	"github.com/advancedcpp/drillbox/internal/drill"
	"github.com/advancedcpp/drillbox/internal/drill/calcdrill"
	"github.com/advancedcpp/drillbox/internal/drill/collections"
	"github.com/advancedcpp/drillbox/internal/drill/greet"
	"github.com/advancedcpp/drillbox/internal/drill/pool"
	"github.com/advancedcpp/drillbox/internal/drill/seq"
	"github.com/advancedcpp/drillbox/internal/drill/transform"
)

// builtinCatalog wires every shipped drill into one registry. The registry
// is built per invocation; there is no package-level mutable state.
func builtinCatalog() *drill.Registry {
	return drill.NewRegistry(
		calcdrill.New(),
		greet.New(),
		seq.New(),
		pool.New(),
		collections.NewUnique(),
		collections.NewWordFreq(),
		collections.NewFifo(),
		transform.New(),
	)
}
