package ports

import "github.com/advancedcpp/drillbox/internal/domain"

// SuiteLoader loads suite definitions from disk.
type SuiteLoader interface {
	LoadSuite(path string) (domain.Suite, error)
	ListSuites(root string) ([]domain.SuiteRef, error)
}
