package tui

import (
	"log/slog"

	"github.com/advancedcpp/drillbox/internal/ports"
)

type Deps struct {
	Catalog          ports.DrillCatalog
	WorkspaceLocator ports.WorkspaceLocator

	Logger *slog.Logger
	Debug  bool
}
