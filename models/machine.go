// ABOUTME: Machine catalog data models for GCP machine families and types
// ABOUTME: Carries normalized per-disk-type limits with the legacy flat schema folded in

package models

// DiskLimit holds the machine-imposed ceilings for disks attached to a machine type.
type DiskLimit struct {
	MaxIOPSRead            int `json:"max_iops_read"`
	MaxIOPSWrite           int `json:"max_iops_write"`
	MaxThroughputReadMBps  int `json:"max_throughput_read_mbps"`
	MaxThroughputWriteMBps int `json:"max_throughput_write_mbps"`
}

// MachineDiskLimit pairs a disk type name with its machine-imposed limits.
// The catalog loader preserves document order, so entry 0 is the fallback
// used when a requested disk type has no dedicated entry. Limits converted
// from the legacy flat schema carry an empty DiskType.
type MachineDiskLimit struct {
	DiskType string    `json:"disk_type"`
	Limit    DiskLimit `json:"limit"`
}

// MachineSpec describes a single machine type. Immutable after catalog load.
type MachineSpec struct {
	Family               string             `json:"family"`
	TypeName             string             `json:"type"`
	VCPU                 int                `json:"vcpu"`
	MemoryGB             float64            `json:"memory_gb"`
	NetworkBandwidthGbps float64            `json:"network_bandwidth_gbps"`
	CPUPlatform          string             `json:"cpu_platform,omitempty"`
	DiskLimits           []MachineDiskLimit `json:"disk_limits"`
}

// DiskLimitFor resolves the machine's limits for the given disk type.
// Returns the dedicated entry when one exists, otherwise the first entry
// of the normalized table. The second return value names the disk type the
// limits actually came from, so callers can tell when the fallback fired.
func (m *MachineSpec) DiskLimitFor(diskType string) (DiskLimit, string) {
	for _, dl := range m.DiskLimits {
		if dl.DiskType == diskType {
			return dl.Limit, dl.DiskType
		}
	}
	if len(m.DiskLimits) > 0 {
		return m.DiskLimits[0].Limit, m.DiskLimits[0].DiskType
	}
	return DiskLimit{}, ""
}

// FamilyInfo is the summary returned by the family listing endpoint.
type FamilyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Family groups the machine types of one GCP machine family.
type Family struct {
	Name        string
	Description string
	Machines    map[string]*MachineSpec
}

// MachineDetailResponse wraps a machine spec with its family for the detail endpoint.
type MachineDetailResponse struct {
	Family string       `json:"family"`
	Type   string       `json:"type"`
	Specs  *MachineSpec `json:"specs"`
}
