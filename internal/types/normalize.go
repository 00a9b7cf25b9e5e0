// Package types provides type definitions for structured data used throughout the skillmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// normalizeFold lowercases and trims a skill name for case-insensitive identity
func normalizeFold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
