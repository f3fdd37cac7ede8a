package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/focusquest/focusquest/internal/engine"
	"github.com/focusquest/focusquest/internal/model"
	"github.com/focusquest/focusquest/internal/service"
	"github.com/focusquest/focusquest/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
	engine      *engine.Engine
	notify      *service.NotifyService
}

func NewAuthHandler(authService *service.AuthService, eng *engine.Engine, notify *service.NotifyService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		engine:      eng,
		notify:      notify,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(req.Email, req.Name, req.Password)
	if errors.Is(err, service.ErrEmailTaken) {
		respondError(w, http.StatusConflict, "email already registered")
		return
	}
	if err != nil {
		slog.Error("failed to register user", "error", err)
		respondError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	h.authService.SetJWTCookie(w, token)
	respondJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User        *model.User        `json:"user"`
	SweepResult engine.SweepResult `json:"sweepResult"`
}

// Login authenticates and, as the session-resume hook, runs a punishment
// sweep over the user's quests before answering.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		slog.Error("failed to log in", "error", err)
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}

	sweepResult, err := h.engine.RunSweep(r.Context(), user.ID)
	if err != nil {
		// The user still gets in; missed deadlines will be caught by the
		// next sweep.
		slog.Error("login sweep failed", "error", err, "user_id", user.ID)
		sweepResult = engine.SweepResult{}
	}
	if sweepResult.Report != nil {
		notifyErr := h.notify.SendDamageReport(user.Email, sweepResult.Report)
		if notifyErr != nil {
			slog.Error("failed to send damage report email", "error", notifyErr, "user_id", user.ID)
		}
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}

	h.authService.SetJWTCookie(w, token)
	respondJSON(w, http.StatusOK, loginResponse{User: user, SweepResult: sweepResult})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
