package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "scopeworks/internal/adapter/http/dto/request"
	response "scopeworks/internal/adapter/http/dto/response"
	"scopeworks/internal/usecase"
	"scopeworks/pkg"
)

var errInvalidMilestonePayload = pkg.NewDomainErrorSimple("INVALID_MILESTONE_INPUT", "Invalid milestone payload", http.StatusBadRequest)

// MilestoneHandler handles HTTP requests for payment milestones and their
// reconciliation against the quote total.

type MilestoneHandler struct {
	usecase usecase.IMilestoneUseCase
}

func NewMilestoneHandler(uc usecase.IMilestoneUseCase) *MilestoneHandler {
	return &MilestoneHandler{usecase: uc}
}

func (h *MilestoneHandler) CreateMilestone(c *gin.Context) {
	var payload request.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMilestonePayload.HTTPStatus, errInvalidMilestonePayload.ToHTTPError())
		return
	}

	milestone, err := h.usecase.Create(c.Request.Context(), c.Param("estimate_id"), payload.ToInput())
	if err != nil {
		appErr := mapMilestoneError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMilestone(milestone))
}

func (h *MilestoneHandler) ListMilestones(c *gin.Context) {
	milestones, err := h.usecase.ListByEstimateID(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapMilestoneError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMilestones(milestones))
}

func (h *MilestoneHandler) UpdateMilestone(c *gin.Context) {
	var payload request.UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMilestonePayload.HTTPStatus, errInvalidMilestonePayload.ToHTTPError())
		return
	}

	milestone, err := h.usecase.Update(c.Request.Context(), c.Param("estimate_id"), c.Param("milestone_id"), payload.ToPatch())
	if err != nil {
		appErr := mapMilestoneError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMilestone(milestone))
}

func (h *MilestoneHandler) DeleteMilestone(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("estimate_id"), c.Param("milestone_id")); err != nil {
		appErr := mapMilestoneError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ReconcileMilestones is advisory: mismatches are reported in the body, never
// as an error status.
func (h *MilestoneHandler) ReconcileMilestones(c *gin.Context) {
	report, err := h.usecase.Reconcile(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapMilestoneError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReconciliation(report))
}

func mapMilestoneError(err error) *pkg.AppError {
	if appErr, ok := mapDomainError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Milestone not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
