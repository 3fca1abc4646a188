// ABOUTME: Sizing calculator for disk performance, effective limits, and optimal size
// ABOUTME: Pure functions over catalog data; all validation happens before computation

package services

import (
	"math"

	"github.com/markalston/gcp-disk-advisor/models"
)

const (
	// LocalSSDDeviceGB is the capacity of one local SSD device. Fixed-kind
	// performance scales with the (fractional) device count.
	LocalSSDDeviceGB = 375
	// NetworkMBpsPerGbps converts network bandwidth to MB/s (decimal, 1 Gbps = 125 MB/s).
	NetworkMBpsPerGbps = 125
	// DefaultOptimalSizeGB is the suggested size for disks with no
	// size-dependent optimum (fixed and provisioned kinds).
	DefaultOptimalSizeGB = 100
)

// SizingCalculator computes disk and effective performance figures.
// Stateless; safe for concurrent use.
type SizingCalculator struct{}

// NewSizingCalculator creates a new calculator.
func NewSizingCalculator() *SizingCalculator {
	return &SizingCalculator{}
}

// ValidateSize checks a requested size against the disk type's capacity
// bounds. Only scaling disks carry bounds; other kinds accept any positive
// size. Non-positive sizes are rejected by the handler before lookup.
func (c *SizingCalculator) ValidateSize(disk *models.DiskSpec, sizeGB float64) error {
	if disk.Kind != models.DiskKindScaling {
		return nil
	}
	if sizeGB < disk.MinSizeGB || sizeGB > disk.MaxSizeGB {
		return &SizeRangeError{
			DiskType:  disk.Name,
			SizeGB:    sizeGB,
			MinSizeGB: disk.MinSizeGB,
			MaxSizeGB: disk.MaxSizeGB,
		}
	}
	return nil
}

// DiskPerformance computes the raw achievable performance of a disk at the
// given size, before machine and network ceilings apply.
func (c *SizingCalculator) DiskPerformance(disk *models.DiskSpec, sizeGB float64) models.DiskPerformance {
	perf := models.DiskPerformance{
		DiskType: disk.Name,
		SizeGB:   sizeGB,
	}

	switch disk.Kind {
	case models.DiskKindFixed:
		// A partial device still contributes proportional performance.
		devices := sizeGB / LocalSSDDeviceGB
		if devices < 1 {
			devices = 1
		}
		perf.IOPSRead = int(disk.Fixed.IOPS.Read * devices)
		perf.IOPSWrite = int(disk.Fixed.IOPS.Write * devices)
		perf.ThroughputReadMBps = int(disk.Fixed.ThroughputMBps.Read * devices)
		perf.ThroughputWriteMBps = int(disk.Fixed.ThroughputMBps.Write * devices)

	case models.DiskKindProvisioned:
		p := disk.Provisioned
		perf.Provisioned = &models.ProvisionedRange{
			IOPSMin:           p.IOPSMin,
			IOPSMax:           p.IOPSMax,
			ThroughputMinMBps: p.ThroughputMinMBps,
			ThroughputMaxMBps: p.ThroughputMaxMBps,
			Note:              p.Note,
		}

	case models.DiskKindScaling:
		s := disk.Scaling
		perf.IOPSRead = scaleMetric(s.IOPSBaseline.Read, s.IOPSPerGB.Read, s.IOPSMax.Read, sizeGB)
		perf.IOPSWrite = scaleMetric(s.IOPSBaseline.Write, s.IOPSPerGB.Write, s.IOPSMax.Write, sizeGB)
		perf.ThroughputReadMBps = scaleMetric(0, s.ThroughputPerGBMBps.Read, s.ThroughputMaxMBps.Read, sizeGB)
		perf.ThroughputWriteMBps = scaleMetric(0, s.ThroughputPerGBMBps.Write, s.ThroughputMaxMBps.Write, sizeGB)
	}

	return perf
}

// scaleMetric applies the linear scaling formula for one direction and
// metric. Truncation to integer is intentional, not rounding.
func scaleMetric(baseline, perGB, max, sizeGB float64) int {
	v := baseline + sizeGB*perGB
	if v > max {
		v = max
	}
	return int(v)
}

// Combine merges raw disk performance with the machine's resolved disk
// limits and its network bandwidth into the effective performance vector.
// limitSource names the disk type the limits were resolved from.
//
// Network bandwidth caps throughput only; IOPS is the two-way minimum of
// disk and machine ceilings.
func (c *SizingCalculator) Combine(machine *models.MachineSpec, limit models.DiskLimit, limitSource string, perf models.DiskPerformance) models.EffectivePerformance {
	networkMBps := machine.NetworkBandwidthGbps * NetworkMBpsPerGbps

	eff := models.EffectivePerformance{
		MachineType:      machine.TypeName,
		DiskType:         perf.DiskType,
		SizeGB:           perf.SizeGB,
		NetworkLimitMBps: networkMBps,
	}
	if limitSource != "" && limitSource != perf.DiskType {
		eff.LimitSource = limitSource
	}

	if perf.Provisioned != nil {
		// Provisioned performance is a configured range; no numeric comparison.
		eff.Provisioned = perf.Provisioned
		eff.Bottlenecks = []models.Bottleneck{models.BottleneckProvisioned}
		eff.Summary = models.SummarizeBottlenecks(eff.Bottlenecks)
		return eff
	}

	var bottlenecks []models.Bottleneck

	eff.IOPSRead = minInt(limit.MaxIOPSRead, perf.IOPSRead)
	if eff.IOPSRead < limit.MaxIOPSRead {
		bottlenecks = append(bottlenecks, models.BottleneckDiskIOPSRead)
	}
	eff.IOPSWrite = minInt(limit.MaxIOPSWrite, perf.IOPSWrite)
	if eff.IOPSWrite < limit.MaxIOPSWrite {
		bottlenecks = append(bottlenecks, models.BottleneckDiskIOPSWrite)
	}

	var bn models.Bottleneck
	eff.ThroughputReadMBps, bn = combineThroughput(limit.MaxThroughputReadMBps, perf.ThroughputReadMBps, networkMBps,
		models.BottleneckDiskThroughputRead, models.BottleneckNetworkRead)
	if bn != "" {
		bottlenecks = append(bottlenecks, bn)
	}
	eff.ThroughputWriteMBps, bn = combineThroughput(limit.MaxThroughputWriteMBps, perf.ThroughputWriteMBps, networkMBps,
		models.BottleneckDiskThroughputWrite, models.BottleneckNetworkWrite)
	if bn != "" {
		bottlenecks = append(bottlenecks, bn)
	}

	if len(bottlenecks) == 0 {
		bottlenecks = []models.Bottleneck{models.BottleneckNone}
	}
	eff.Bottlenecks = bottlenecks
	eff.Summary = models.SummarizeBottlenecks(bottlenecks)
	return eff
}

// combineThroughput computes the three-way minimum for one direction and
// attributes the bottleneck. When effective throughput falls below the
// machine ceiling, the tighter of disk and network is blamed; on an exact
// tie the disk wins.
func combineThroughput(machineMBps, diskMBps int, networkMBps float64, diskBn, networkBn models.Bottleneck) (int, models.Bottleneck) {
	effective := math.Min(math.Min(float64(machineMBps), float64(diskMBps)), networkMBps)
	if int(effective) < machineMBps {
		if float64(diskMBps) <= networkMBps {
			return int(effective), diskBn
		}
		return int(effective), networkBn
	}
	return int(effective), ""
}

// OptimalSize solves for the disk size that just saturates the machine's
// read-direction ceilings, then verifies by re-running the performance
// model at the solved size.
func (c *SizingCalculator) OptimalSize(machine *models.MachineSpec, limit models.DiskLimit, limitSource string, disk *models.DiskSpec) models.OptimalSizeResult {
	res := models.OptimalSizeResult{
		MachineType:    machine.TypeName,
		DiskType:       disk.Name,
		MachineMaxIOPS: limit.MaxIOPSRead,
	}
	if limitSource != "" && limitSource != disk.Name {
		res.LimitSource = limitSource
	}

	if disk.Kind != models.DiskKindScaling {
		// No size-dependent optimum exists for fixed or provisioned disks.
		res.OptimalSizeGB = DefaultOptimalSizeGB
	} else {
		s := disk.Scaling
		sizeForIOPS := candidateSize(float64(limit.MaxIOPSRead), s.IOPSBaseline.Read, s.IOPSPerGB.Read, s.IOPSMax.Read, disk.MaxSizeGB)
		sizeForThroughput := candidateSize(float64(limit.MaxThroughputReadMBps), 0, s.ThroughputPerGBMBps.Read, s.ThroughputMaxMBps.Read, disk.MaxSizeGB)

		optimal := minInt(sizeForIOPS, sizeForThroughput)
		if optimal < int(disk.MinSizeGB) {
			optimal = int(disk.MinSizeGB)
		}
		if optimal > int(disk.MaxSizeGB) {
			optimal = int(disk.MaxSizeGB)
		}
		res.OptimalSizeGB = optimal
	}

	perf := c.DiskPerformance(disk, float64(res.OptimalSizeGB))
	if perf.Provisioned != nil {
		res.DiskIOPSAtOptimal = perf.Provisioned.IOPSMax
	} else {
		res.DiskIOPSAtOptimal = perf.IOPSRead
	}
	return res
}

// candidateSize inverts the linear scaling formula for one metric. When the
// machine ceiling exceeds what the disk itself can reach, the disk's own
// ceiling is solved against instead. A zero slope means the metric never
// constrains, so the disk's maximum size is returned.
func candidateSize(machineCeiling, baseline, perGB, diskMax, maxSizeGB float64) int {
	if perGB <= 0 {
		return int(maxSizeGB)
	}
	ceiling := machineCeiling
	if ceiling > diskMax {
		ceiling = diskMax
	}
	return int(math.Floor((ceiling - baseline) / perGB))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
