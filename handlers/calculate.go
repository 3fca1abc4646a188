// ABOUTME: HTTP handlers for the performance calculator and optimal size solver
// ABOUTME: Validates all input before invoking the pure calculator core

package handlers

import (
	"net/http"

	"github.com/markalston/gcp-disk-advisor/services"
)

// CalculateRequest is the calculate endpoint's input. DiskSizeGB is a
// pointer so a missing field can be told apart from an explicit zero.
type CalculateRequest struct {
	MachineType string   `json:"machine_type"`
	DiskType    string   `json:"disk_type"`
	DiskSizeGB  *float64 `json:"disk_size_gb"`
}

// OptimalSizeRequest is the optimal-size endpoint's input.
type OptimalSizeRequest struct {
	MachineType string `json:"machine_type"`
	DiskType    string `json:"disk_type"`
}

// Calculate computes effective performance for a machine/disk/size triple.
// Field validation happens before any catalog lookup; the calculator core
// never sees invalid input.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if !h.decodeJSONBody(w, r, &req) {
		return
	}

	if err := services.ValidateMachineTypeName(req.MachineType); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := services.ValidateDiskTypeName(req.DiskType); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.DiskSizeGB == nil {
		h.writeError(w, "disk_size_gb is required", http.StatusBadRequest)
		return
	}
	if *req.DiskSizeGB <= 0 {
		h.writeError(w, "disk_size_gb must be positive", http.StatusBadRequest)
		return
	}

	machine, err := h.catalog.ResolveMachine(req.MachineType)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	disk, err := h.catalog.Disk(req.DiskType)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if err := h.calc.ValidateSize(disk, *req.DiskSizeGB); err != nil {
		h.writeServiceError(w, err)
		return
	}

	perf := h.calc.DiskPerformance(disk, *req.DiskSizeGB)
	limit, source := machine.DiskLimitFor(disk.Name)
	result := h.calc.Combine(machine, limit, source, perf)

	h.writeJSON(w, http.StatusOK, result)
}

// OptimalSize solves for the disk size that just saturates the machine's
// ceilings for the given disk type.
func (h *Handler) OptimalSize(w http.ResponseWriter, r *http.Request) {
	var req OptimalSizeRequest
	if !h.decodeJSONBody(w, r, &req) {
		return
	}

	if err := services.ValidateMachineTypeName(req.MachineType); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := services.ValidateDiskTypeName(req.DiskType); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	machine, err := h.catalog.ResolveMachine(req.MachineType)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	disk, err := h.catalog.Disk(req.DiskType)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	limit, source := machine.DiskLimitFor(disk.Name)
	result := h.calc.OptimalSize(machine, limit, source, disk)

	h.writeJSON(w, http.StatusOK, result)
}
