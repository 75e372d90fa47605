package universities

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/scholar/internal/files"
	"github.com/JaimeStill/scholar/pkg/handlers"
	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/JaimeStill/scholar/pkg/routes"
)

// Handler provides HTTP endpoints for university operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
	limits     files.Limits
}

func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config, limits files.Limits) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "universities"),
		pagination: pagination,
		limits:     limits,
	}
}

// Routes returns the university endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/universities",
		Description: "Universities with photo and small photo",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/photo", Handler: h.image((System).Photo)},
			{Method: "GET", Pattern: "/{id}/small-photo", Handler: h.image((System).SmallPhoto)},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
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

func (h *Handler) image(get func(System, context.Context, int64) (*Photo, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}

		photo, err := get(h.sys, r.Context(), id)
		if err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
			return
		}

		handlers.RespondBytes(w, "", photo.File)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := files.ParseForm(w, r, h.limits); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	u, err := h.sys.Create(r.Context(), CommandFromForm(r.MultipartForm.Value), uploadsFromForm(r))
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

	u, err := h.sys.Update(r.Context(), id, CommandFromForm(r.MultipartForm.Value), uploadsFromForm(r))
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

func uploadsFromForm(r *http.Request) Uploads {
	return Uploads{
		Photo:      files.FormFile(r, "photo"),
		SmallPhoto: files.FormFile(r, "small_photo"),
	}
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid university id %q", r.PathValue("id"))
	}
	return id, nil
}
