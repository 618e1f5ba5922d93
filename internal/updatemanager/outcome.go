package updatemanager

import (
	"github.com/eopatcher/eopatcher/internal/appversion"
	"github.com/eopatcher/eopatcher/internal/updatemanager/fetcher"
)

// Outcome is the terminal result of a patch run
type Outcome struct {
	version appversion.Version
	err     error
}

// Succeeded reports that v is now installed
func Succeeded(v appversion.Version) Outcome {
	return Outcome{version: v}
}

// Failed reports a patch run that did not complete
func Failed(err error) Outcome {
	return Outcome{err: err}
}

func (o Outcome) Success() bool {
	return o.err == nil
}

// Version returns the installed version of a successful run
func (o Outcome) Version() appversion.Version {
	return o.version
}

func (o Outcome) Err() error {
	return o.err
}

// Cause is the human readable failure reason, empty on success
func (o Outcome) Cause() string {
	if o.err == nil {
		return ""
	}
	return o.err.Error()
}

// CheckResult carries both sides of a version check
type CheckResult struct {
	Local  appversion.Version
	Remote fetcher.Result
}

// Failed reports whether the remote version could not be determined
func (r CheckResult) Failed() bool {
	return r.Remote.Failed()
}

// UpdateAvailable reports whether the remote version is newer than the installed one
func (r CheckResult) UpdateAvailable() bool {
	return !r.Remote.Failed() && r.Remote.Version().GreaterThan(r.Local)
}
