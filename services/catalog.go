// ABOUTME: Catalog store for machine and disk reference data
// ABOUTME: Loads both catalog documents once at startup and normalizes schemas

package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/markalston/gcp-disk-advisor/models"
)

// Catalog holds the machine and disk reference data. Read-only after load;
// safe to share across concurrent requests without locking.
type Catalog struct {
	families       map[string]*models.Family
	machinesByType map[string]*models.MachineSpec
	diskOrder      []string
	disks          map[string]*models.DiskSpec
}

// rawMachine is the machine catalog document schema. Machines either carry a
// per-disk-type disk_limits object or the legacy flat max_disk_* fields.
type rawMachine struct {
	VCPU                 int               `json:"vcpu"`
	MemoryGB             float64           `json:"memory_gb"`
	NetworkBandwidthGbps float64           `json:"network_bandwidth_gbps"`
	CPUPlatform          string            `json:"cpu_platform"`
	DiskLimits           orderedDiskLimits `json:"disk_limits"`

	// Legacy flat schema. Unset fields default to 0.
	MaxDiskIOPSRead            int `json:"max_disk_iops_read"`
	MaxDiskIOPSWrite           int `json:"max_disk_iops_write"`
	MaxDiskThroughputReadMBps  int `json:"max_disk_throughput_read_mbps"`
	MaxDiskThroughputWriteMBps int `json:"max_disk_throughput_write_mbps"`
}

type rawFamily struct {
	Description string                `json:"description"`
	Machines    map[string]rawMachine `json:"machines"`
}

// orderedDiskLimits decodes a disk_limits JSON object preserving document
// key order. encoding/json map decoding would lose it, and the resolver's
// fallback is defined as the first entry of the document.
type orderedDiskLimits []models.MachineDiskLimit

func (o *orderedDiskLimits) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("disk_limits must be an object")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("disk_limits has a non-string key")
		}
		var limit models.DiskLimit
		if err := dec.Decode(&limit); err != nil {
			return fmt.Errorf("disk_limits[%s]: %w", name, err)
		}
		*o = append(*o, models.MachineDiskLimit{DiskType: name, Limit: limit})
	}
	return nil
}

// rawDisk is the disk catalog document schema. The performance regime is
// determined by the disk type name, not by which fields are present.
type rawDisk struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	MinSizeGB   float64 `json:"min_size_gb"`
	MaxSizeGB   float64 `json:"max_size_gb"`

	// Fixed (whole-device) disks
	IOPSFixed           *models.RWRate `json:"iops_fixed"`
	ThroughputFixedMBps *models.RWRate `json:"throughput_fixed_mbps"`

	// Provisioned (Hyperdisk-class) disks
	ProvisionedIOPSMin           int    `json:"provisioned_iops_min"`
	ProvisionedIOPSMax           int    `json:"provisioned_iops_max"`
	ProvisionedThroughputMinMBps int    `json:"provisioned_throughput_min_mbps"`
	ProvisionedThroughputMaxMBps int    `json:"provisioned_throughput_max_mbps"`
	Note                         string `json:"note"`

	// Scaling disks
	IOPSPerGB           *models.RWRate `json:"iops_per_gb"`
	IOPSBaseline        *models.RWRate `json:"iops_baseline"`
	IOPSMax             *models.RWRate `json:"iops_max"`
	ThroughputPerGBMBps *models.RWRate `json:"throughput_per_gb_mbps"`
	ThroughputMaxMBps   *models.RWRate `json:"throughput_max_mbps"`
}

// LoadCatalog reads and normalizes both catalog documents. The two files are
// independent, so they are parsed concurrently.
func LoadCatalog(machinesPath, disksPath string) (*Catalog, error) {
	var machineDoc map[string]rawFamily
	var diskDoc []rawDisk

	var g errgroup.Group
	g.Go(func() error {
		data, err := os.ReadFile(machinesPath)
		if err != nil {
			return fmt.Errorf("reading machine catalog: %w", err)
		}
		if err := json.Unmarshal(data, &machineDoc); err != nil {
			return fmt.Errorf("parsing machine catalog %s: %w", machinesPath, err)
		}
		return nil
	})
	g.Go(func() error {
		data, err := os.ReadFile(disksPath)
		if err != nil {
			return fmt.Errorf("reading disk catalog: %w", err)
		}
		if err := json.Unmarshal(data, &diskDoc); err != nil {
			return fmt.Errorf("parsing disk catalog %s: %w", disksPath, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildCatalog(machineDoc, diskDoc)
}

func buildCatalog(machineDoc map[string]rawFamily, diskDoc []rawDisk) (*Catalog, error) {
	c := &Catalog{
		families:       make(map[string]*models.Family),
		machinesByType: make(map[string]*models.MachineSpec),
		disks:          make(map[string]*models.DiskSpec),
	}

	for name, raw := range machineDoc {
		family := &models.Family{
			Name:        name,
			Description: raw.Description,
			Machines:    make(map[string]*models.MachineSpec),
		}
		for typeName, rm := range raw.Machines {
			spec, err := normalizeMachine(name, typeName, rm)
			if err != nil {
				return nil, err
			}
			family.Machines[typeName] = spec
			if existing, ok := c.machinesByType[typeName]; ok {
				return nil, fmt.Errorf("machine type %s appears in families %s and %s", typeName, existing.Family, name)
			}
			c.machinesByType[typeName] = spec
		}
		c.families[name] = family
	}

	for _, rd := range diskDoc {
		spec, err := normalizeDisk(rd)
		if err != nil {
			return nil, err
		}
		if _, ok := c.disks[spec.Name]; ok {
			return nil, fmt.Errorf("duplicate disk type %s", spec.Name)
		}
		c.disks[spec.Name] = spec
		c.diskOrder = append(c.diskOrder, spec.Name)
	}

	return c, nil
}

// normalizeMachine converts a raw machine entry into the single internal
// representation. Legacy flat limits become a one-entry table so the
// resolver never branches on schema at request time.
func normalizeMachine(family, typeName string, rm rawMachine) (*models.MachineSpec, error) {
	spec := &models.MachineSpec{
		Family:               family,
		TypeName:             typeName,
		VCPU:                 rm.VCPU,
		MemoryGB:             rm.MemoryGB,
		NetworkBandwidthGbps: rm.NetworkBandwidthGbps,
		CPUPlatform:          rm.CPUPlatform,
	}
	if rm.NetworkBandwidthGbps < 0 {
		return nil, fmt.Errorf("machine %s: negative network bandwidth", typeName)
	}
	if len(rm.DiskLimits) > 0 {
		spec.DiskLimits = rm.DiskLimits
	} else {
		spec.DiskLimits = []models.MachineDiskLimit{{
			Limit: models.DiskLimit{
				MaxIOPSRead:            rm.MaxDiskIOPSRead,
				MaxIOPSWrite:           rm.MaxDiskIOPSWrite,
				MaxThroughputReadMBps:  rm.MaxDiskThroughputReadMBps,
				MaxThroughputWriteMBps: rm.MaxDiskThroughputWriteMBps,
			},
		}}
	}
	for _, dl := range spec.DiskLimits {
		if dl.Limit.MaxIOPSRead < 0 || dl.Limit.MaxIOPSWrite < 0 ||
			dl.Limit.MaxThroughputReadMBps < 0 || dl.Limit.MaxThroughputWriteMBps < 0 {
			return nil, fmt.Errorf("machine %s: negative disk limit for %q", typeName, dl.DiskType)
		}
	}
	return spec, nil
}

// normalizeDisk resolves the performance regime from the disk type name once,
// at load time: local-ssd is fixed-increment, hyperdisk* is provisioned,
// everything else scales with capacity.
func normalizeDisk(rd rawDisk) (*models.DiskSpec, error) {
	if rd.Name == "" {
		return nil, fmt.Errorf("disk catalog entry missing name")
	}
	spec := &models.DiskSpec{
		Name:        rd.Name,
		Description: rd.Description,
		MinSizeGB:   rd.MinSizeGB,
		MaxSizeGB:   rd.MaxSizeGB,
	}

	switch {
	case rd.Name == "local-ssd":
		if rd.IOPSFixed == nil || rd.ThroughputFixedMBps == nil {
			return nil, fmt.Errorf("disk %s: missing fixed performance fields", rd.Name)
		}
		spec.Kind = models.DiskKindFixed
		spec.Fixed = &models.FixedDiskSpec{
			IOPS:           *rd.IOPSFixed,
			ThroughputMBps: *rd.ThroughputFixedMBps,
		}
	case strings.HasPrefix(rd.Name, "hyperdisk"):
		spec.Kind = models.DiskKindProvisioned
		spec.Provisioned = &models.ProvisionedDiskSpec{
			IOPSMin:           rd.ProvisionedIOPSMin,
			IOPSMax:           rd.ProvisionedIOPSMax,
			ThroughputMinMBps: rd.ProvisionedThroughputMinMBps,
			ThroughputMaxMBps: rd.ProvisionedThroughputMaxMBps,
			Note:              rd.Note,
		}
	default:
		if rd.IOPSPerGB == nil || rd.IOPSMax == nil || rd.ThroughputPerGBMBps == nil || rd.ThroughputMaxMBps == nil {
			return nil, fmt.Errorf("disk %s: missing scaling performance fields", rd.Name)
		}
		if rd.MinSizeGB <= 0 || rd.MaxSizeGB < rd.MinSizeGB {
			return nil, fmt.Errorf("disk %s: invalid size range %g-%g", rd.Name, rd.MinSizeGB, rd.MaxSizeGB)
		}
		spec.Kind = models.DiskKindScaling
		spec.Scaling = &models.ScalingDiskSpec{
			IOPSPerGB:           *rd.IOPSPerGB,
			IOPSMax:             *rd.IOPSMax,
			ThroughputPerGBMBps: *rd.ThroughputPerGBMBps,
			ThroughputMaxMBps:   *rd.ThroughputMaxMBps,
		}
		if rd.IOPSBaseline != nil {
			spec.Scaling.IOPSBaseline = *rd.IOPSBaseline
		}
	}
	return spec, nil
}

// Families returns the family listing as a name-keyed map.
func (c *Catalog) Families() map[string]models.FamilyInfo {
	out := make(map[string]models.FamilyInfo, len(c.families))
	for name, f := range c.families {
		out[name] = models.FamilyInfo{Name: name, Description: f.Description}
	}
	return out
}

// FamilyMachines returns all machines in a family keyed by machine type.
func (c *Catalog) FamilyMachines(family string) (map[string]*models.MachineSpec, error) {
	f, ok := c.families[family]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFamily, family)
	}
	return f.Machines, nil
}

// Machine looks up a machine by family and type name.
func (c *Catalog) Machine(family, typeName string) (*models.MachineSpec, error) {
	f, ok := c.families[family]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFamily, family)
	}
	m, ok := f.Machines[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMachineType, typeName)
	}
	return m, nil
}

// AllMachines returns every machine across all families, sorted by type name.
func (c *Catalog) AllMachines() []*models.MachineSpec {
	out := make([]*models.MachineSpec, 0, len(c.machinesByType))
	for _, m := range c.machinesByType {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TypeName < out[j].TypeName })
	return out
}

// ResolveMachine looks up a machine by type name across all families.
func (c *Catalog) ResolveMachine(typeName string) (*models.MachineSpec, error) {
	m, ok := c.machinesByType[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMachineType, typeName)
	}
	return m, nil
}

// Disks returns all disk types in catalog document order.
func (c *Catalog) Disks() []*models.DiskSpec {
	out := make([]*models.DiskSpec, 0, len(c.diskOrder))
	for _, name := range c.diskOrder {
		out = append(out, c.disks[name])
	}
	return out
}

// Disk looks up a disk type by name.
func (c *Catalog) Disk(name string) (*models.DiskSpec, error) {
	d, ok := c.disks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDiskType, name)
	}
	return d, nil
}

// Counts reports catalog entry counts for the health endpoint.
func (c *Catalog) Counts() (families, machines, diskTypes int) {
	return len(c.families), len(c.machinesByType), len(c.disks)
}
