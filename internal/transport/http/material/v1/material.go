package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/material-catalog/internal/converter"
	"github.com/you-humble/material-catalog/internal/model"
)

type MaterialService interface {
	List(ctx context.Context) ([]*model.Material, error)
	Material(ctx context.Context, id string) (*model.Material, error)
	Create(ctx context.Context, form model.MaterialForm) (model.InsertResult, error)
	Update(ctx context.Context, id string, form model.MaterialForm) (model.UpdateResult, error)
	Delete(ctx context.Context, id string) (model.DeleteResult, error)
}

type handler struct {
	svc                MaterialService
	maxUploadSize      int64
	exposeErrorDetails bool
}

func NewMaterialHandler(service MaterialService, maxUploadSize int64, exposeErrorDetails bool) *handler {
	return &handler{
		svc:                service,
		maxUploadSize:      maxUploadSize,
		exposeErrorDetails: exposeErrorDetails,
	}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

func (h *handler) List(w http.ResponseWriter, r *http.Request) {
	materials, err := h.svc.List(r.Context())
	if err != nil {
		h.respondError(w, r, opList, err)
		return
	}

	respondJSON(w, r, http.StatusOK, converter.MaterialsToDTO(materials))
}

func (h *handler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Material(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, opGet, err)
		return
	}

	respondJSON(w, r, http.StatusOK, converter.MaterialToDTO(m))
}

func (h *handler) Create(w http.ResponseWriter, r *http.Request) {
	form, cleanup, err := h.decodeForm(w, r)
	if err != nil {
		h.respondError(w, r, opCreate, err)
		return
	}
	defer cleanup()

	res, err := h.svc.Create(r.Context(), form)
	if err != nil {
		h.respondError(w, r, opCreate, err)
		return
	}

	respondJSON(w, r, http.StatusOK, converter.InsertResultToDTO(res))
}

func (h *handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !model.IsValidMaterialID(id) {
		h.respondError(w, r, opUpdate, model.ErrInvalidID)
		return
	}

	form, cleanup, err := h.decodeForm(w, r)
	if err != nil {
		h.respondError(w, r, opUpdate, err)
		return
	}
	defer cleanup()

	res, err := h.svc.Update(r.Context(), id, form)
	if err != nil {
		h.respondError(w, r, opUpdate, err)
		return
	}

	respondJSON(w, r, http.StatusOK, converter.UpdateResultToDTO(res))
}

func (h *handler) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, opDelete, err)
		return
	}

	respondJSON(w, r, http.StatusOK, converter.DeleteResultToDTO(res))
}
