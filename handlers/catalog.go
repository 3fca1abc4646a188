// ABOUTME: HTTP handlers for machine family and disk type catalog endpoints
// ABOUTME: Read-only views over the load-once catalog store

package handlers

import (
	"net/http"

	"github.com/markalston/gcp-disk-advisor/models"
	"github.com/markalston/gcp-disk-advisor/services"
)

// ListFamilies returns all machine families with their descriptions.
func (h *Handler) ListFamilies(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.Families())
}

// ListFamilyMachines returns all machines in a family keyed by machine type.
func (h *Handler) ListFamilyMachines(w http.ResponseWriter, r *http.Request) {
	family := r.PathValue("family")
	if err := services.ValidateFamilyName(family); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	machines, err := h.catalog.FamilyMachines(family)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, machines)
}

// GetMachine returns the details for a specific machine type.
func (h *Handler) GetMachine(w http.ResponseWriter, r *http.Request) {
	family := r.PathValue("family")
	typeName := r.PathValue("type")
	if err := services.ValidateFamilyName(family); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := services.ValidateMachineTypeName(typeName); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	machine, err := h.catalog.Machine(family, typeName)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, models.MachineDetailResponse{
		Family: family,
		Type:   typeName,
		Specs:  machine,
	})
}

// ListMachines returns every machine across all families, sorted by type name.
func (h *Handler) ListMachines(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.AllMachines())
}

// ListDisks returns all disk types with their size bounds and performance specs.
func (h *Handler) ListDisks(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.Disks())
}
