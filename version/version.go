package version

import (
	"fmt"
	"strings"
)

const (
	appMajor uint = 0
	appMinor uint = 1
	appPatch uint = 0
)

// appBuild is defined as a variable so it can be overridden during the build
// process with '-ldflags "-X github.com/zecnet/zecd/version.appBuild=foo"' if
// needed. Build metadata may only contain alphanumerics and dashes; anything
// else is dropped from the version string.
var appBuild string

var version string

// Version returns the application version as a semantic version string, with
// the build metadata appended when it was set at link time.
func Version() string {
	if version == "" {
		version = fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
		if validBuildMetadata(appBuild) {
			version += "-" + appBuild
		}
	}
	return version
}

func validBuildMetadata(build string) bool {
	if build == "" {
		return false
	}
	return strings.IndexFunc(build, func(r rune) bool {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '-':
		default:
			return true
		}
		return false
	}) == -1
}
