package ports

import "github.com/advancedcpp/drillbox/internal/domain"

// ArtifactStore persists suite runs.
type ArtifactStore interface {
	// SaveRun stores the artifact and returns its assigned id.
	SaveRun(run domain.SuiteArtifact) (string, error)
}
