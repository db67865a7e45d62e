package handlers

import (
	"errors"
	"motorcar_consultancy/internal/usecase"
	"motorcar_consultancy/pkg"
	"net/http"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// mapSubmissionError renders use case errors. failMessage is the message used
// when the store fails; the cause text travels in the "error" field.
func mapSubmissionError(err error, failMessage string) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", verr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("CONSULTATION_REQUEST_NOT_FOUND", "Consultation request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceSelectionNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_SELECTION_NOT_FOUND", "Service selection not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContactMessageNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_MESSAGE_NOT_FOUND", "Contact message not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownLineItem):
		return pkg.NewDomainErrorSimple("UNKNOWN_LINE_ITEM", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("STORAGE_ERROR", failMessage, err, http.StatusInternalServerError)
	}
}
