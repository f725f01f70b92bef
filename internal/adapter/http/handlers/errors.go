package handlers

import (
	"errors"
	"net/http"

	"scopeworks/internal/domain/entities"
	"scopeworks/pkg"
)

// mapDomainError translates the domain error types shared by every use case.
// Sentinel errors specific to one handler are matched in that handler's own
// mapper before falling through here.
func mapDomainError(err error) (*pkg.AppError, bool) {
	var verr *entities.ValidationError
	if errors.As(err, &verr) {
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", verr.Error(), http.StatusBadRequest), true
	}

	var serr *entities.StateError
	if errors.As(err, &serr) {
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_EDITABLE", serr.Error(), http.StatusConflict), true
	}

	var rerr *entities.RefIntegrityError
	if errors.As(err, &rerr) {
		return pkg.NewDomainErrorSimple("REFERENCED_BY_OTHERS", rerr.Error(), http.StatusConflict), true
	}

	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
