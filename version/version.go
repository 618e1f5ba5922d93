package version

// will be replaced with the release version when using goreleaser
var version = "development"

// PatcherVersion returns the build version of the patcher itself
func PatcherVersion() string {
	return version
}
