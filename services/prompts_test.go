package services

import (
	"strings"
	"testing"

	"github.com/markalston/gcp-disk-advisor/models"
)

func TestExplainPromptIncludesSpecs(t *testing.T) {
	prompt := ExplainPrompt(testMachine())

	for _, want := range []string{"n2-standard-32", "N2 family", "vCPUs: 32", "Memory: 128 GB", "60000"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to contain %q", want)
		}
	}
}

func TestRecommendPromptCapsMachineList(t *testing.T) {
	machines := make([]*models.MachineSpec, 0, 30)
	for i := 0; i < 30; i++ {
		m := testMachine()
		machines = append(machines, m)
	}
	families := map[string]models.FamilyInfo{"N2": {Name: "N2"}}

	prompt := RecommendPrompt("a PostgreSQL database with heavy writes", machines, families)
	if !strings.Contains(prompt, "a PostgreSQL database with heavy writes") {
		t.Error("Expected workload description in prompt")
	}
	if got := strings.Count(prompt, "n2-standard-32"); got != maxMachinesInPrompt {
		t.Errorf("Expected %d machine entries, got %d", maxMachinesInPrompt, got)
	}
}

func TestRecommendPromptFamilyDescriptions(t *testing.T) {
	families := map[string]models.FamilyInfo{
		"N2": {Name: "N2", Description: "balanced price/performance"},
		"E2": {Name: "E2", Description: "cost-optimized"},
		"M3": {Name: "M3"},
	}

	prompt := RecommendPrompt("an in-memory analytics store", nil, families)
	for _, want := range []string{"E2 (cost-optimized)", "N2 (balanced price/performance)"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to contain %q", want)
		}
	}

	// Map iteration order must not leak into the prompt
	first := RecommendPrompt("workload", nil, families)
	for i := 0; i < 10; i++ {
		if RecommendPrompt("workload", nil, families) != first {
			t.Fatal("Expected identical prompts across calls")
		}
	}
}

func TestAnalyzePromptLabelsBottlenecks(t *testing.T) {
	result := models.EffectivePerformance{
		MachineType:        "n2-standard-32",
		DiskType:           "pd-balanced",
		SizeGB:             5000,
		IOPSRead:           30000,
		IOPSWrite:          30000,
		ThroughputReadMBps: 1200,
		NetworkLimitMBps:   4000,
		Bottlenecks:        []models.Bottleneck{models.BottleneckDiskIOPSRead},
	}

	prompt := AnalyzePrompt(result)
	if !strings.Contains(prompt, models.BottleneckDiskIOPSRead.Label()) {
		t.Error("Expected human-readable bottleneck label in prompt")
	}
	if !strings.Contains(prompt, "5000 GB pd-balanced") {
		t.Error("Expected disk configuration in prompt")
	}
}
