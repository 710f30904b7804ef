package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sweetshop/sweetshop-api/internal/model"
	"github.com/sweetshop/sweetshop-api/internal/service"
)

// SweetHandler handles HTTP requests for inventory operations.
type SweetHandler struct {
	service *service.SweetService
}

// NewSweetHandler creates a new SweetHandler.
func NewSweetHandler(svc *service.SweetService) *SweetHandler {
	return &SweetHandler{service: svc}
}

// HandleCreate handles POST /api/sweets and POST /api/sweets/create requests.
func (h *SweetHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateSweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, KindValidation, "invalid request body")
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		if isSweetValidationError(err) {
			writeError(w, http.StatusUnprocessableEntity, KindValidation, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, KindInternal, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleList handles GET /api/sweets requests.
func (h *SweetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sweets, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, KindInternal, "internal server error")
		return
	}

	if sweets == nil {
		sweets = []model.SweetResponse{}
	}
	writeJSON(w, http.StatusOK, sweets)
}

// HandleRestock handles POST /api/sweets/{id}/restock requests.
func (h *SweetHandler) HandleRestock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, KindNotFound, "sweet not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RestockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, "invalid request body")
		return
	}

	resp, err := h.service.Restock(r.Context(), id, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRestock):
			writeError(w, http.StatusBadRequest, KindValidation, err.Error())
		case errors.Is(err, service.ErrQuantityUnderflow):
			writeError(w, http.StatusBadRequest, KindNegativeQuantity, err.Error())
		case errors.Is(err, service.ErrSweetNotFound):
			writeError(w, http.StatusNotFound, KindNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, KindInternal, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func isSweetValidationError(err error) bool {
	return errors.Is(err, service.ErrNameRequired) ||
		errors.Is(err, service.ErrCategoryRequired) ||
		errors.Is(err, service.ErrNegativePrice) ||
		errors.Is(err, service.ErrNegativeQuantity)
}
