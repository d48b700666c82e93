package handlers

import (
	"errors"
	"net/http"

	request "seguros_xpto/internal/adapter/http/dto/request"
	"seguros_xpto/internal/usecase"
	"seguros_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errMissingFile    = pkg.NewDomainErrorSimple("MISSING_FILE", "A PDF must be sent in the multipart field \"file\"", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindError reports field-level binding failures in Details.
func bindError(c *gin.Context, err error) {
	if fields := request.FieldViolations(err); fields != nil {
		writeError(c, errInvalidPayload.WithDetails(fields))
		return
	}
	writeError(c, errInvalidPayload)
}

// mapCommonError covers the errors every usecase can return.
func mapCommonError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Some fields are missing or invalid", http.StatusBadRequest).
			WithDetails(map[string]string(verr.Violations))
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrTransientIO):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Storage temporarily unavailable, try again", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapSimulationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSimulationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid simulation id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSimulationNotFound):
		return pkg.NewDomainErrorSimple("SIMULATION_NOT_FOUND", "Simulation not found", http.StatusNotFound)
	default:
		return mapDocumentError(err)
	}
}

func mapPolicyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPolicyID), errors.Is(err, usecase.ErrInvalidSimulationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Policy not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSimulationNotFound):
		return pkg.NewDomainErrorSimple("SIMULATION_NOT_FOUND", "Simulation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSimulationNotAttached):
		return pkg.NewDomainErrorSimple("SIMULATION_NOT_QUOTED", "The simulation has no quote attached yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "The policy cannot move to that status", http.StatusConflict)
	case errors.Is(err, usecase.ErrPolicyLocked):
		return pkg.NewDomainErrorSimple("POLICY_LOCKED", "The policy can no longer be edited", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownSlot):
		return pkg.NewDomainErrorSimple("UNKNOWN_SLOT", "Unknown document slot", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSlotNotAllowed):
		return pkg.NewDomainErrorSimple("SLOT_NOT_ALLOWED", "This document is not available for this policy type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyDocument):
		return pkg.NewDomainErrorSimple("EMPTY_DOCUMENT", "The document is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSizeLimit):
		return pkg.NewDomainErrorSimple("DOCUMENT_TOO_LARGE", "The document exceeds the size limit of this slot", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrUnsupportedContentType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_CONTENT_TYPE", "Only PDF documents are accepted", http.StatusUnsupportedMediaType)
	case errors.Is(err, usecase.ErrSimulationNotFound):
		return pkg.NewDomainErrorSimple("SIMULATION_NOT_FOUND", "Simulation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Policy not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
