package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/focusquest/focusquest/internal/service"
)

type HelpHandler struct {
	helpService *service.HelpService
}

func NewHelpHandler(helpService *service.HelpService) *HelpHandler {
	return &HelpHandler{
		helpService: helpService,
	}
}

func (h *HelpHandler) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.helpService.Pages()
	if err != nil {
		slog.Error("failed to load help pages", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load help pages")
		return
	}

	respondJSON(w, http.StatusOK, pages)
}

func (h *HelpHandler) Page(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("page")

	page, err := h.helpService.Page(slug)
	if errors.Is(err, service.ErrHelpPageNotFound) {
		respondError(w, http.StatusNotFound, "help page not found")
		return
	}
	if err != nil {
		slog.Error("failed to load help page", "error", err, "page", slug)
		respondError(w, http.StatusInternalServerError, "failed to load help page")
		return
	}

	respondJSON(w, http.StatusOK, page)
}
