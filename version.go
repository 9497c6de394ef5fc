// Package mailfill is an email domain autocomplete for Bubble Tea programs.
//
// The suggest package holds the matching engine and interaction state, the
// autocomplete package the terminal component, config the TOML settings and
// ipc a headless msgpack service over the same engine.
package mailfill

import (
	_ "embed"
	"regexp"
	"strings"
)

// release is the VERSION file shipped next to this package.
//
//go:embed VERSION
var release string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version is the mailfill release, as printed by -version and announced in
// the ipc ready banner.
func Version() string {
	return strings.TrimSpace(release)
}

// VersionTag is Version prefixed with `v`, the form used for git tags.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver checks a release string, surrounding whitespace ignored. Tags with
// a leading `v` are rejected.
func IsSemver(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	return semverRE.MatchString(v)
}
