package ports

// WorkspaceLocator finds the workspace root for a given starting directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
