// ABOUTME: Effective performance result with per-metric bottleneck attribution
// ABOUTME: Identifies which resource constrains each direction and metric

package models

import "fmt"

// Bottleneck identifies the resource constraining one metric of the
// effective performance result.
type Bottleneck string

const (
	BottleneckDiskIOPSRead        Bottleneck = "disk_iops_read"
	BottleneckDiskIOPSWrite       Bottleneck = "disk_iops_write"
	BottleneckDiskThroughputRead  Bottleneck = "disk_throughput_read"
	BottleneckDiskThroughputWrite Bottleneck = "disk_throughput_write"
	BottleneckNetworkRead         Bottleneck = "network_read"
	BottleneckNetworkWrite        Bottleneck = "network_write"
	// BottleneckNone means no metric falls below the machine's ceiling.
	BottleneckNone Bottleneck = "none"
	// BottleneckProvisioned marks provisioned disks, where performance is a
	// configured range and no numeric comparison applies.
	BottleneckProvisioned Bottleneck = "provisioned"
)

// bottleneckLabels maps bottleneck values to human-readable resource names.
var bottleneckLabels = map[Bottleneck]string{
	BottleneckDiskIOPSRead:        "Disk IOPS (read)",
	BottleneckDiskIOPSWrite:       "Disk IOPS (write)",
	BottleneckDiskThroughputRead:  "Disk throughput (read)",
	BottleneckDiskThroughputWrite: "Disk throughput (write)",
	BottleneckNetworkRead:         "Network bandwidth (read)",
	BottleneckNetworkWrite:        "Network bandwidth (write)",
}

// Label returns the human-readable name of the bottleneck resource.
func (b Bottleneck) Label() string {
	if label, ok := bottleneckLabels[b]; ok {
		return label
	}
	return string(b)
}

// EffectivePerformance is the final combiner output: the three-way minimum
// of disk, machine, and network ceilings per direction and metric, plus the
// bottleneck attribution. Provisioned disks carry the passthrough range
// instead of point values.
type EffectivePerformance struct {
	MachineType string  `json:"machine_type"`
	DiskType    string  `json:"disk_type"`
	SizeGB      float64 `json:"size_gb"`
	// LimitSource names the disk type whose machine limits were applied when
	// it differs from the requested disk type (permissive fallback).
	LimitSource         string            `json:"limit_source,omitempty"`
	IOPSRead            int               `json:"iops_read"`
	IOPSWrite           int               `json:"iops_write"`
	ThroughputReadMBps  int               `json:"throughput_read_mbps"`
	ThroughputWriteMBps int               `json:"throughput_write_mbps"`
	NetworkLimitMBps    float64           `json:"network_limit_mbps"`
	Bottlenecks         []Bottleneck      `json:"bottlenecks"`
	Summary             string            `json:"summary"`
	Provisioned         *ProvisionedRange `json:"provisioned,omitempty"`
}

// SummarizeBottlenecks builds the human-readable summary for a set of
// co-occurring bottlenecks.
func SummarizeBottlenecks(bottlenecks []Bottleneck) string {
	if len(bottlenecks) == 0 || bottlenecks[0] == BottleneckNone {
		return "Machine type is the limiting factor."
	}
	if bottlenecks[0] == BottleneckProvisioned {
		return "Configure within provisioned limits."
	}
	if len(bottlenecks) == 1 {
		return fmt.Sprintf("%s constrains effective performance below the machine ceiling.", bottlenecks[0].Label())
	}
	return fmt.Sprintf("%s constrains effective performance below the machine ceiling (%d metrics constrained).",
		bottlenecks[0].Label(), len(bottlenecks))
}

// OptimalSizeResult is the inverse-solver output: the disk size that just
// saturates the machine's read-direction ceilings, verified by re-running
// the disk performance model at the solved size.
type OptimalSizeResult struct {
	MachineType       string `json:"machine_type"`
	DiskType          string `json:"disk_type"`
	OptimalSizeGB     int    `json:"optimal_size_gb"`
	MachineMaxIOPS    int    `json:"machine_max_iops"`
	DiskIOPSAtOptimal int    `json:"disk_iops_at_optimal"`
	LimitSource       string `json:"limit_source,omitempty"`
}
