// Copyright (c) 2026 the hanziconv authors
// released under the MIT license

package hanzi

import "fmt"

const (
	// SemVer is the semantic version of hanziconv.
	SemVer = "1.0.0"
)

var (
	// Ver is the full version of hanziconv, used in the CLI version output.
	Ver = fmt.Sprintf("hanziconv-%s", SemVer)
	// Commit is the full git hash, if available
	Commit string
)

// initialize version strings (these are set in package main via linker flags)
func SetVersionString(version, commit string) {
	Commit = commit
	if version != "" {
		Ver = fmt.Sprintf("hanziconv-%s", version)
	} else if len(Commit) == 40 {
		Ver = fmt.Sprintf("hanziconv-%s-%s", SemVer, Commit[:16])
	}
}
