// Package version provides centralized version information for the hiserve
// binaries. The daemon (hiserved) and the CLI (hiservectl) version
// independently so the management tool can evolve without forcing a server
// release. All versions follow semantic versioning (semver) conventions.

package version

// HiservedVersion holds the current hiserved daemon version.
// Format: major.minor.patch[-prerelease][+build]
const HiservedVersion = "0.1.0-dev"

// HiservectlVersion holds the current hiservectl CLI version.
// Format: major.minor.patch[-prerelease][+build]
const HiservectlVersion = "0.1.0-dev"
