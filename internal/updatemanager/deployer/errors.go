package deployer

import "fmt"

// ArchiveError reports a patch archive that is missing, corrupt, unreadable or unsafe
type ArchiveError struct {
	Archive string
	Err     error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("patch archive %s: %v", e.Archive, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// CopyError reports a single file that could not be written into the installation directory
type CopyError struct {
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s: %v", e.Path, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// DeploymentFailure is returned once every copy settled and at least one of them failed
type DeploymentFailure struct {
	Failed int
	Total  int
	Err    error
}

func (e *DeploymentFailure) Error() string {
	return fmt.Sprintf("%d of %d files could not be deployed: %v", e.Failed, e.Total, e.Err)
}

func (e *DeploymentFailure) Unwrap() error {
	return e.Err
}
