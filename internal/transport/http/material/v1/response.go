package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/you-humble/material-catalog/internal/model"
	"github.com/you-humble/material-catalog/platform/logger"
)

type operation string

const (
	opList   operation = "list"
	opGet    operation = "get"
	opCreate operation = "create"
	opUpdate operation = "update"
	opDelete operation = "delete"
)

// Fallback messages for unclassified failures.
var internalMessages = map[operation]string{
	opList:   "Failed to fetch",
	opGet:    "Failed to fetch",
	opCreate: "Failed to create",
	opUpdate: "Update Failed",
	opDelete: "Delete Failed",
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, op operation, err error) {
	status, message := mapError(op, err)

	resp := errorResponse{Message: message}
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed",
			logger.String("operation", string(op)),
			logger.Int("status", status),
			logger.ErrorF(err),
		)
		if h.exposeErrorDetails {
			resp.Error = err.Error()
		}
	}

	respondJSON(w, r, status, resp)
}

func mapError(op operation, err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInvalidID):
		return http.StatusBadRequest, "Invalid ID" // 400
	case errors.Is(err, model.ErrFieldsRequired):
		return http.StatusBadRequest, "* All fields are required"
	case errors.Is(err, model.ErrEmptyField):
		return http.StatusBadRequest, "Fields cannot be empty"
	case errors.Is(err, model.ErrInvalidPrice):
		return http.StatusBadRequest, "Invalid pricePerGram"
	case errors.Is(err, model.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "File too large" // 413
	case errors.Is(err, errTooManyFiles):
		return http.StatusBadRequest, "Only one image is allowed"
	case errors.Is(err, errUnexpectedFile):
		return http.StatusBadRequest, "Unexpected file field"
	case errors.Is(err, model.ErrInvalidArgument):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, model.ErrMaterialNotFound):
		return http.StatusNotFound, "Not found" // 404
	case errors.Is(err, model.ErrImageUpload):
		return http.StatusInternalServerError, "Failed to upload image" // 500
	default:
		return http.StatusInternalServerError, internalMessages[op]
	}
}
