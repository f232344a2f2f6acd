package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jey-uki/users-api/internal/api/httpx"
	"github.com/jey-uki/users-api/internal/api/validate"
	"github.com/jey-uki/users-api/internal/metrics"
	"github.com/jey-uki/users-api/internal/models"
	"github.com/jey-uki/users-api/internal/services"
	"github.com/jey-uki/users-api/internal/storage"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	httpx.WriteList(w, len(users), users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, u)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	metrics.UsersCreated.Inc()
	httpx.WriteData(w, http.StatusCreated, u)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, u)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeErr(w, r, err)
		return
	}
	metrics.UsersDeleted.Inc()
	httpx.WriteMessage(w, "User deleted successfully")
}

// writeErr converts the storage/validation taxonomy into the fixed HTTP
// mapping. Unclassified errors are logged and never leaked to the client.
func (h *UserHandler) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		httpx.WriteValidationError(w, verrs)
	case errors.Is(err, storage.ErrInvalidID):
		httpx.WriteError(w, http.StatusBadRequest, "invalid id format")
	case errors.Is(err, storage.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, storage.ErrDuplicateEmail):
		httpx.WriteError(w, http.StatusBadRequest, "email already exists")
	default:
		slog.Error("storage failure", "method", r.Method, "path", r.URL.Path, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
