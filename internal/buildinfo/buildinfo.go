// Package buildinfo carries version metadata stamped at build time, e.g.
//
//	go build -ldflags "-X .../internal/buildinfo.Version=v0.3.0"
//
// Window backends use Short for default titles; demo binaries print Full.
package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for titles and logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Full returns the complete build identification line.
func Full() string {
	return Short() + " (commit " + Commit + ", built " + Date + ")"
}
