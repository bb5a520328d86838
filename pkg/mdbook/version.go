// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mdbook

import "golang.org/x/mod/semver"

// Version is the mdbook release series this protocol package tracks.
// Hosts in the same compatibility range drive the preprocessor without a
// version warning.
const Version = "0.4.40"

// Compatible reports whether a host running hostVersion speaks the same
// protocol as a preprocessor built against builtVersion. Pre-1.0 releases
// follow the semver zero-major rule: minor bumps may break, so the two
// must share major and minor. From 1.0 on, matching majors suffice.
// Unparseable versions are reported incompatible so the caller can warn.
func Compatible(builtVersion, hostVersion string) bool {
	built := "v" + builtVersion
	host := "v" + hostVersion
	if !semver.IsValid(built) || !semver.IsValid(host) {
		return false
	}
	if semver.Major(built) != semver.Major(host) {
		return false
	}
	if semver.Major(built) == "v0" {
		return semver.MajorMinor(built) == semver.MajorMinor(host)
	}
	return true
}
