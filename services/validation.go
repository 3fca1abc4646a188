// ABOUTME: Input validation for API request fields
// ABOUTME: Keeps malformed identifiers out of lookups and log output

package services

import (
	"fmt"
	"regexp"
	"strings"
)

// machineTypePattern matches GCP machine type names (e.g. n2-standard-32)
var machineTypePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// diskTypePattern matches GCP disk type names (e.g. pd-balanced, hyperdisk-extreme)
var diskTypePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// familyPattern matches machine family names (e.g. E2, N2D)
var familyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// SanitizeForLog removes control characters from strings to prevent log
// injection when including user input in error messages.
func SanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
}

// ValidateMachineTypeName checks that a machine type identifier is well formed.
func ValidateMachineTypeName(name string) error {
	if name == "" {
		return fmt.Errorf("machine_type is required")
	}
	if !machineTypePattern.MatchString(name) {
		return fmt.Errorf("invalid machine type format: %s", SanitizeForLog(name))
	}
	return nil
}

// ValidateDiskTypeName checks that a disk type identifier is well formed.
func ValidateDiskTypeName(name string) error {
	if name == "" {
		return fmt.Errorf("disk_type is required")
	}
	if !diskTypePattern.MatchString(name) {
		return fmt.Errorf("invalid disk type format: %s", SanitizeForLog(name))
	}
	return nil
}

// ValidateFamilyName checks that a family identifier is well formed.
func ValidateFamilyName(name string) error {
	if name == "" {
		return fmt.Errorf("family cannot be empty")
	}
	if !familyPattern.MatchString(name) {
		return fmt.Errorf("invalid family format: %s", SanitizeForLog(name))
	}
	return nil
}
