package updatemanager

// State is the position of the Orchestrator in the check/patch sequence
type State int32

const (
	Idle State = iota
	CheckingVersions
	UpToDate
	UpdateAvailable
	CheckFailed
	Patching
	Patched
	PatchFailed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case CheckingVersions:
		return "checking versions"
	case UpToDate:
		return "up to date"
	case UpdateAvailable:
		return "update available"
	case CheckFailed:
		return "check failed"
	case Patching:
		return "patching"
	case Patched:
		return "patched"
	case PatchFailed:
		return "patch failed"
	default:
		return "invalid"
	}
}
