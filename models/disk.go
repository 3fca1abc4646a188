// ABOUTME: Disk catalog data models with one variant per performance regime
// ABOUTME: Variants are resolved from disk type names once at catalog load time

package models

// DiskKind tags the performance regime of a disk type.
type DiskKind string

const (
	// DiskKindFixed scales in whole-device increments (local SSD).
	DiskKindFixed DiskKind = "fixed"
	// DiskKindProvisioned has user-configured performance within a range (Hyperdisk).
	DiskKindProvisioned DiskKind = "provisioned"
	// DiskKindScaling grows linearly with capacity up to a ceiling (persistent disk).
	DiskKindScaling DiskKind = "scaling"
)

// RWRate holds a per-direction rate value.
type RWRate struct {
	Read  float64 `json:"read"`
	Write float64 `json:"write"`
}

// FixedDiskSpec describes per-device performance for fixed-increment disks.
type FixedDiskSpec struct {
	IOPS           RWRate `json:"iops"`
	ThroughputMBps RWRate `json:"throughput_mbps"`
}

// ProvisionedDiskSpec describes the configurable performance range of a
// provisioned disk. Performance is independent of capacity.
type ProvisionedDiskSpec struct {
	IOPSMin           int    `json:"iops_min"`
	IOPSMax           int    `json:"iops_max"`
	ThroughputMinMBps int    `json:"throughput_min_mbps"`
	ThroughputMaxMBps int    `json:"throughput_max_mbps"`
	Note              string `json:"note,omitempty"`
}

// ScalingDiskSpec describes size-proportional performance. IOPS may carry a
// size-independent baseline term; throughput never does.
type ScalingDiskSpec struct {
	IOPSPerGB           RWRate `json:"iops_per_gb"`
	IOPSBaseline        RWRate `json:"iops_baseline"`
	IOPSMax             RWRate `json:"iops_max"`
	ThroughputPerGBMBps RWRate `json:"throughput_per_gb_mbps"`
	ThroughputMaxMBps   RWRate `json:"throughput_max_mbps"`
}

// DiskSpec is one disk type's catalog entry. Exactly one of Fixed,
// Provisioned, or Scaling is set, matching Kind.
type DiskSpec struct {
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Kind        DiskKind             `json:"kind"`
	MinSizeGB   float64              `json:"min_size_gb"`
	MaxSizeGB   float64              `json:"max_size_gb"`
	Fixed       *FixedDiskSpec       `json:"fixed,omitempty"`
	Provisioned *ProvisionedDiskSpec `json:"provisioned,omitempty"`
	Scaling     *ScalingDiskSpec     `json:"scaling,omitempty"`
}

// ProvisionedRange is the passthrough performance result for provisioned disks.
type ProvisionedRange struct {
	IOPSMin           int    `json:"iops_min"`
	IOPSMax           int    `json:"iops_max"`
	ThroughputMinMBps int    `json:"throughput_min_mbps"`
	ThroughputMaxMBps int    `json:"throughput_max_mbps"`
	Note              string `json:"note,omitempty"`
}

// DiskPerformance is the raw achievable performance of a (disk type, size)
// pair before machine and network ceilings are applied. Provisioned disks
// report a range instead of point values.
type DiskPerformance struct {
	DiskType            string            `json:"disk_type"`
	SizeGB              float64           `json:"size_gb"`
	IOPSRead            int               `json:"iops_read"`
	IOPSWrite           int               `json:"iops_write"`
	ThroughputReadMBps  int               `json:"throughput_read_mbps"`
	ThroughputWriteMBps int               `json:"throughput_write_mbps"`
	Provisioned         *ProvisionedRange `json:"provisioned,omitempty"`
}
