// ABOUTME: Error kinds shared across the catalog, calculator, and LLM services
// ABOUTME: Handlers translate these into HTTP status codes at the request boundary

package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog lookups. Handlers map these to 404.
var (
	ErrUnknownFamily      = errors.New("family not found")
	ErrUnknownMachineType = errors.New("machine type not found")
	ErrUnknownDiskType    = errors.New("disk type not found")
)

// SizeRangeError reports a requested disk size outside the disk type's
// allowed capacity range. Handlers map it to 400.
type SizeRangeError struct {
	DiskType  string
	SizeGB    float64
	MinSizeGB float64
	MaxSizeGB float64
}

func (e *SizeRangeError) Error() string {
	return fmt.Sprintf("disk size %g GB is outside the allowed range for %s (%g-%g GB)",
		e.SizeGB, e.DiskType, e.MinSizeGB, e.MaxSizeGB)
}

// UpstreamError reports a failed call to an LLM provider. Handlers map it
// to 500 with the upstream message embedded.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
