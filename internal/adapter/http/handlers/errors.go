package handlers

import (
	"errors"
	"net/http"

	"orcamentos_api/internal/usecase"
	"orcamentos_api/pkg"
)

// mapDomainError translates use case errors into the HTTP error envelope.
// Validation failures keep the wrapped message so the caller learns which
// field was rejected; everything else gets a generic body.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
