package handler

import (
	"net/http"

	"github.com/focusquest/focusquest/internal/ctxkeys"
	"github.com/focusquest/focusquest/internal/engine"
	"github.com/focusquest/focusquest/internal/model"
)

type StoreHandler struct {
	engine *engine.Engine
}

func NewStoreHandler(eng *engine.Engine) *StoreHandler {
	return &StoreHandler{
		engine: eng,
	}
}

func (h *StoreHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, model.StoreCatalog)
}

type purchaseRequest struct {
	ItemID string `json:"itemId"`
}

type purchaseResponse struct {
	Stats     model.UserStats `json:"stats"`
	Inventory []string        `json:"inventory"`
}

func (h *StoreHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req purchaseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	snap, err := h.engine.PurchaseItem(r.Context(), user.ID, req.ItemID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, purchaseResponse{Stats: snap.Stats, Inventory: snap.Inventory})
}

func (h *StoreHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	snap, err := h.engine.Snapshot(r.Context(), user.ID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, snap.Inventory)
}
