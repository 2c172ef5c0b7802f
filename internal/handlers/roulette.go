package handlers

import (
	"net/http"

	"github.com/abrezinsky/reviewwheel/internal/services"
)

// ==================== Pages ====================

func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := IndexPageData{
		Prizes:   h.Roulette.Chances(),
		Snapshot: h.Roulette.Snapshot(),
	}
	h.templates.Index.Execute(w, data)
}

func (h *Handlers) handleStaffPanel(w http.ResponseWriter, r *http.Request) {
	data := StaffPageData{
		Snapshot: h.Roulette.Snapshot(),
		Prizes:   h.Roulette.Chances(),
	}
	h.templates.StaffPanel.Execute(w, data)
}

// ==================== Wheel API ====================

func (h *Handlers) handleGetState(w http.ResponseWriter, r *http.Request) {
	respondOK(w, h.Roulette.Snapshot())
}

func (h *Handlers) handleGetPrizes(w http.ResponseWriter, r *http.Request) {
	respondOK(w, PrizesResponse{Prizes: h.Roulette.Chances()})
}

func (h *Handlers) handleSpin(w http.ResponseWriter, r *http.Request) {
	snap, applied := h.Roulette.Spin(r.Context())
	respondOK(w, ActionResponse{Applied: applied, State: snap})
}

func (h *Handlers) handleReview(w http.ResponseWriter, r *http.Request) {
	snap, applied := h.Roulette.Review(r.Context())
	respondOK(w, ActionResponse{Applied: applied, State: snap})
}

func (h *Handlers) handleReviewQR(w http.ResponseWriter, r *http.Request) {
	size, err := parseIntQuery(r, "size", services.DefaultQRSize)
	if err != nil {
		respondError(w, err)
		return
	}

	png, err := h.Roulette.ReviewQRImage(size)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(png)
}

// ==================== Staff API ====================

func (h *Handlers) handleReset(w http.ResponseWriter, r *http.Request) {
	snap := h.Roulette.Reset(r.Context())
	respondOK(w, ActionResponse{Applied: true, State: snap})
}
