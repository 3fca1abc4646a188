// ABOUTME: Prompt builders for the LLM explanation, recommendation, and analysis endpoints
// ABOUTME: Keeps prompt wording in one place, away from HTTP handler logic

package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/markalston/gcp-disk-advisor/models"
)

// maxMachinesInPrompt caps the machine list embedded in recommendation
// prompts to keep them within a sensible token budget.
const maxMachinesInPrompt = 20

// ExplainPrompt builds the prompt for explaining a machine type's use cases.
func ExplainPrompt(machine *models.MachineSpec) string {
	limit, _ := machine.DiskLimitFor("")

	return fmt.Sprintf(`Explain the ideal use cases for the GCP machine type %s from the %s family.

Specifications:
- vCPUs: %d
- Memory: %g GB
- Network Bandwidth: %g Gbps
- Max Disk IOPS (Read): %d
- CPU Platform: %s

Provide a concise explanation (2-3 sentences) about:
1. What workloads this machine is best suited for
2. Key advantages of this configuration

Keep it practical and business-focused.`,
		machine.TypeName, machine.Family,
		machine.VCPU, machine.MemoryGB, machine.NetworkBandwidthGbps,
		limit.MaxIOPSRead, machine.CPUPlatform)
}

// RecommendPrompt builds the prompt for recommending machine types for a
// workload description.
func RecommendPrompt(workload string, machines []*models.MachineSpec, families map[string]models.FamilyInfo) string {
	available := make([]string, 0, maxMachinesInPrompt)
	for _, m := range machines {
		if len(available) == maxMachinesInPrompt {
			break
		}
		available = append(available, fmt.Sprintf("%s (%s)", m.TypeName, m.Family))
	}

	familyNames := make([]string, 0, len(families))
	for name, info := range families {
		if info.Description != "" {
			familyNames = append(familyNames, fmt.Sprintf("%s (%s)", name, info.Description))
		} else {
			familyNames = append(familyNames, name)
		}
	}
	sort.Strings(familyNames)

	return fmt.Sprintf(`Based on this workload description: "%s"

Recommend 2-3 suitable GCP machine types from these options and briefly explain why each is suitable.

Available machine types include: %s... and more from families: %s.

Format your response as a brief recommendation with specific machine types.`,
		workload, strings.Join(available, ", "), strings.Join(familyNames, ", "))
}

// AnalyzePrompt builds the prompt for explaining a computed effective
// performance result in plain language.
func AnalyzePrompt(result models.EffectivePerformance) string {
	bottlenecks := make([]string, 0, len(result.Bottlenecks))
	for _, b := range result.Bottlenecks {
		bottlenecks = append(bottlenecks, b.Label())
	}

	return fmt.Sprintf(`A user configured a %s machine with a %g GB %s disk. The effective performance came out as:
- Read IOPS: %d
- Write IOPS: %d
- Read throughput: %d MB/s
- Write throughput: %d MB/s
- Network limit: %g MB/s
- Constraining resource(s): %s

In 2-3 sentences, explain what is limiting this configuration and suggest one concrete change (larger disk, different disk type, or different machine type) that would improve it. Keep it practical.`,
		result.MachineType, result.SizeGB, result.DiskType,
		result.IOPSRead, result.IOPSWrite,
		result.ThroughputReadMBps, result.ThroughputWriteMBps,
		result.NetworkLimitMBps, strings.Join(bottlenecks, ", "))
}
