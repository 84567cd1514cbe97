// Package version provides centralized version information for curio binaries.
// The daemon and CLI are versioned independently so the management tool can
// evolve separately from the service, while each binary reports a consistent
// version across its flags, health endpoint, and user agent.
// All versions follow semantic versioning (semver) conventions.

package version

// CuriodVersion holds the current curiod daemon version.
// Format: major.minor.patch[-prerelease][+build]
const CuriodVersion = "0.1.0-dev"

// CurioctlVersion holds the current curioctl CLI version.
// Format: major.minor.patch[-prerelease][+build]
const CurioctlVersion = "0.1.0-dev"
