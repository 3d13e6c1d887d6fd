// Package version holds the build version, overridable with
// -ldflags "-X github.com/oxygene76/mmrplane/internal/version.Version=...".
package version

// Version is the mmrplane release.
var Version = "v1.0.0"
