package users

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/scholar/internal/files"
	"github.com/JaimeStill/scholar/pkg/handlers"
	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/JaimeStill/scholar/pkg/routes"
	"github.com/google/uuid"
)

type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
	limits     files.Limits
}

func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config, limits files.Limits) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "users"),
		pagination: pagination,
		limits:     limits,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/users",
		Description: "Administrative user profiles",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/photo", Handler: h.Photo},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page, FiltersFromQuery(r.URL.Query()))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	u, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, u)
}

func (h *Handler) Photo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	photo, err := h.sys.Photo(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondBytes(w, "", photo.File)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := files.ParseForm(w, r, h.limits); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	u, err := h.sys.Create(r.Context(), CommandFromForm(r.MultipartForm.Value), files.FormFile(r, "photo"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, u)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := files.ParseForm(w, r, h.limits); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	u, err := h.sys.Update(r.Context(), id, CommandFromForm(r.MultipartForm.Value), files.FormFile(r, "photo"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, u)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, r.PathValue("id"))
	}
	return id, nil
}
