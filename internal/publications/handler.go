package publications

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/scholar/internal/files"
	"github.com/JaimeStill/scholar/pkg/handlers"
	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/JaimeStill/scholar/pkg/routes"
)

// Handler provides HTTP endpoints for publication operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
	limits     files.Limits
}

func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config, limits files.Limits) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "publications"),
		pagination: pagination,
		limits:     limits,
	}
}

// Routes returns the publication endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/publications",
		Description: "Publications and their PDF manuscripts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/file", Handler: h.File},
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

	p, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) File(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	m, err := h.sys.File(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="publication-%d.pdf"`, id))
	handlers.RespondBytes(w, "application/pdf", m.File)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	cmd, err := h.parseForm(w, r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	p, err := h.sys.Create(r.Context(), cmd, files.FormFile(r, "file"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cmd, err := h.parseForm(w, r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	p, err := h.sys.Update(r.Context(), id, cmd, files.FormFile(r, "file"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
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

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) (Command, error) {
	if err := files.ParseForm(w, r, h.limits); err != nil {
		return Command{}, err
	}
	return CommandFromForm(r.MultipartForm.Value)
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid publication id %q", r.PathValue("id"))
	}
	return id, nil
}
