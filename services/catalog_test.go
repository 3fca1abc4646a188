package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/markalston/gcp-disk-advisor/models"
)

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := LoadCatalog(
		filepath.Join("testdata", "machines.json"),
		filepath.Join("testdata", "disks.json"),
	)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	return catalog
}

func TestLoadCatalogCounts(t *testing.T) {
	catalog := loadTestCatalog(t)
	families, machines, disks := catalog.Counts()
	if families != 2 {
		t.Errorf("Expected 2 families, got %d", families)
	}
	if machines != 3 {
		t.Errorf("Expected 3 machines, got %d", machines)
	}
	if disks != 4 {
		t.Errorf("Expected 4 disk types, got %d", disks)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join("testdata", "does-not-exist.json"), filepath.Join("testdata", "disks.json"))
	if err == nil {
		t.Error("Expected error for missing machine catalog")
	}
}

func TestCatalogMachineLookup(t *testing.T) {
	catalog := loadTestCatalog(t)

	m, err := catalog.Machine("N2", "n2-standard-32")
	if err != nil {
		t.Fatalf("Machine lookup failed: %v", err)
	}
	if m.VCPU != 32 || m.NetworkBandwidthGbps != 32 {
		t.Errorf("Unexpected machine spec: vcpu=%d network=%g", m.VCPU, m.NetworkBandwidthGbps)
	}

	// Nested disk_limits entries must decode to non-zero limits; a key
	// mismatch here silently zeroes every machine ceiling.
	limit, source := m.DiskLimitFor("pd-balanced")
	if source != "pd-balanced" {
		t.Errorf("Expected dedicated pd-balanced entry, got %q", source)
	}
	if limit.MaxIOPSRead != 60000 || limit.MaxIOPSWrite != 60000 {
		t.Errorf("Expected decoded IOPS limits 60000/60000, got %d/%d", limit.MaxIOPSRead, limit.MaxIOPSWrite)
	}
	if limit.MaxThroughputReadMBps != 1200 || limit.MaxThroughputWriteMBps != 1200 {
		t.Errorf("Expected decoded throughput limits 1200/1200, got %d/%d",
			limit.MaxThroughputReadMBps, limit.MaxThroughputWriteMBps)
	}

	if _, err := catalog.Machine("Z9", "n2-standard-32"); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("Expected ErrUnknownFamily, got %v", err)
	}
	if _, err := catalog.Machine("N2", "n2-standard-96"); !errors.Is(err, ErrUnknownMachineType) {
		t.Errorf("Expected ErrUnknownMachineType, got %v", err)
	}
}

func TestCatalogResolveMachineAcrossFamilies(t *testing.T) {
	catalog := loadTestCatalog(t)

	m, err := catalog.ResolveMachine("e2-medium")
	if err != nil {
		t.Fatalf("ResolveMachine failed: %v", err)
	}
	if m.Family != "E2" {
		t.Errorf("Expected family E2, got %s", m.Family)
	}

	if _, err := catalog.ResolveMachine("n4-standard-2"); !errors.Is(err, ErrUnknownMachineType) {
		t.Errorf("Expected ErrUnknownMachineType, got %v", err)
	}
}

func TestCatalogAllMachinesSorted(t *testing.T) {
	catalog := loadTestCatalog(t)
	machines := catalog.AllMachines()
	if len(machines) != 3 {
		t.Fatalf("Expected 3 machines, got %d", len(machines))
	}
	for i := 1; i < len(machines); i++ {
		if machines[i-1].TypeName > machines[i].TypeName {
			t.Errorf("Machines not sorted: %s before %s", machines[i-1].TypeName, machines[i].TypeName)
		}
	}
}

func TestCatalogDiskLookup(t *testing.T) {
	catalog := loadTestCatalog(t)

	d, err := catalog.Disk("pd-balanced")
	if err != nil {
		t.Fatalf("Disk lookup failed: %v", err)
	}
	if d.Kind != models.DiskKindScaling {
		t.Errorf("Expected scaling kind, got %s", d.Kind)
	}

	if _, err := catalog.Disk("pd-nonexistent"); !errors.Is(err, ErrUnknownDiskType) {
		t.Errorf("Expected ErrUnknownDiskType, got %v", err)
	}
}

func TestCatalogDisksPreserveDocumentOrder(t *testing.T) {
	catalog := loadTestCatalog(t)
	disks := catalog.Disks()
	want := []string{"pd-balanced", "pd-extreme", "local-ssd", "hyperdisk-balanced"}
	if len(disks) != len(want) {
		t.Fatalf("Expected %d disks, got %d", len(want), len(disks))
	}
	for i, name := range want {
		if disks[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, disks[i].Name)
		}
	}
}

func TestNormalizeDiskKinds(t *testing.T) {
	catalog := loadTestCatalog(t)

	local, _ := catalog.Disk("local-ssd")
	if local.Kind != models.DiskKindFixed || local.Fixed == nil {
		t.Errorf("local-ssd must be fixed kind with fixed spec")
	}

	hyper, _ := catalog.Disk("hyperdisk-balanced")
	if hyper.Kind != models.DiskKindProvisioned || hyper.Provisioned == nil {
		t.Errorf("hyperdisk-balanced must be provisioned kind")
	}
	if hyper.Provisioned.Note == "" {
		t.Error("Expected provisioned note to survive normalization")
	}

	extreme, _ := catalog.Disk("pd-extreme")
	if extreme.Scaling == nil || extreme.Scaling.IOPSBaseline.Read != 2500 {
		t.Errorf("Expected pd-extreme baseline 2500, got %+v", extreme.Scaling)
	}
}

func TestNormalizeLegacyFlatSchema(t *testing.T) {
	catalog := loadTestCatalog(t)

	m, err := catalog.ResolveMachine("e2-medium")
	if err != nil {
		t.Fatalf("ResolveMachine failed: %v", err)
	}
	if len(m.DiskLimits) != 1 {
		t.Fatalf("Expected one normalized limit entry, got %d", len(m.DiskLimits))
	}
	if m.DiskLimits[0].DiskType != "" {
		t.Errorf("Legacy entry must not name a disk type, got %q", m.DiskLimits[0].DiskType)
	}
	if m.DiskLimits[0].Limit.MaxIOPSRead != 10000 {
		t.Errorf("Expected legacy MaxIOPSRead 10000, got %d", m.DiskLimits[0].Limit.MaxIOPSRead)
	}

	// Legacy machines resolve the same limits for every requested disk type.
	limit, source := m.DiskLimitFor("pd-ssd")
	if limit.MaxIOPSRead != 10000 || source != "" {
		t.Errorf("Expected flat limits for any disk type, got %d from %q", limit.MaxIOPSRead, source)
	}
}

func TestDiskLimitForFallbackOrder(t *testing.T) {
	catalog := loadTestCatalog(t)
	m, err := catalog.ResolveMachine("n2-standard-8")
	if err != nil {
		t.Fatalf("ResolveMachine failed: %v", err)
	}

	// Dedicated entry
	limit, source := m.DiskLimitFor("pd-ssd")
	if source != "pd-ssd" || limit.MaxThroughputReadMBps != 800 {
		t.Errorf("Expected dedicated pd-ssd entry, got %q with %d", source, limit.MaxThroughputReadMBps)
	}

	// Unknown disk type falls back to the first entry in document order
	limit, source = m.DiskLimitFor("hyperdisk-balanced")
	if source != "pd-balanced" {
		t.Errorf("Expected fallback to first entry pd-balanced, got %q", source)
	}
	if limit.MaxThroughputReadMBps != 240 {
		t.Errorf("Expected fallback limits from pd-balanced, got %d", limit.MaxThroughputReadMBps)
	}
}

func TestBuildCatalogRejectsDuplicateMachineType(t *testing.T) {
	doc := map[string]rawFamily{
		"A": {Machines: map[string]rawMachine{"shared-type": {VCPU: 2}}},
		"B": {Machines: map[string]rawMachine{"shared-type": {VCPU: 4}}},
	}
	_, err := buildCatalog(doc, nil)
	if err == nil {
		t.Error("Expected error for machine type in two families")
	}
}

func TestBuildCatalogRejectsNegativeLimits(t *testing.T) {
	doc := map[string]rawFamily{
		"A": {Machines: map[string]rawMachine{
			"bad-machine": {VCPU: 2, MaxDiskIOPSRead: -1},
		}},
	}
	_, err := buildCatalog(doc, nil)
	if err == nil {
		t.Error("Expected error for negative disk limit")
	}
}

func TestNormalizeDiskValidation(t *testing.T) {
	tests := []struct {
		name string
		disk rawDisk
	}{
		{"missing name", rawDisk{}},
		{"scaling without rates", rawDisk{Name: "pd-incomplete", MinSizeGB: 10, MaxSizeGB: 100}},
		{"inverted size range", rawDisk{
			Name: "pd-bad-range", MinSizeGB: 100, MaxSizeGB: 10,
			IOPSPerGB: &models.RWRate{}, IOPSMax: &models.RWRate{},
			ThroughputPerGBMBps: &models.RWRate{}, ThroughputMaxMBps: &models.RWRate{},
		}},
		{"local-ssd without fixed fields", rawDisk{Name: "local-ssd", MinSizeGB: 375, MaxSizeGB: 9000}},
	}
	for _, tt := range tests {
		if _, err := normalizeDisk(tt.disk); err == nil {
			t.Errorf("%s: expected normalization error", tt.name)
		}
	}
}
