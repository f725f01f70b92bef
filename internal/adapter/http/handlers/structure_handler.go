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

var errInvalidStructurePayload = pkg.NewDomainErrorSimple("INVALID_STRUCTURE_INPUT", "Invalid structure payload", http.StatusBadRequest)

// StructureHandler handles HTTP requests for the epic/stage hierarchy.

type StructureHandler struct {
	usecase usecase.IStructureUseCase
}

func NewStructureHandler(uc usecase.IStructureUseCase) *StructureHandler {
	return &StructureHandler{usecase: uc}
}

func (h *StructureHandler) CreateEpic(c *gin.Context) {
	var payload request.CreateEpicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStructurePayload.HTTPStatus, errInvalidStructurePayload.ToHTTPError())
		return
	}

	epic, err := h.usecase.CreateEpic(c.Request.Context(), c.Param("estimate_id"), payload.Name)
	if err != nil {
		appErr := mapStructureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEpic(epic))
}

func (h *StructureHandler) RenameEpic(c *gin.Context) {
	var payload request.RenameRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStructurePayload.HTTPStatus, errInvalidStructurePayload.ToHTTPError())
		return
	}

	epic, err := h.usecase.RenameEpic(c.Request.Context(), c.Param("estimate_id"), c.Param("epic_id"), payload.Name)
	if err != nil {
		appErr := mapStructureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEpic(epic))
}

func (h *StructureHandler) MoveEpic(c *gin.Context) {
	var payload request.MoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStructurePayload.HTTPStatus, errInvalidStructurePayload.ToHTTPError())
		return
	}

	epics, err := h.usecase.MoveEpic(c.Request.Context(), c.Param("estimate_id"), c.Param("epic_id"), usecase.MoveDirection(payload.Direction))
	if err != nil {
		appErr := mapStructureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEpics(epics))
}

func (h *StructureHandler) DeleteEpic(c *gin.Context) {
	if err := h.usecase.DeleteEpic(c.Request.Context(), c.Param("estimate_id"), c.Param("epic_id")); err != nil {
		appErr := mapStructureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *StructureHandler) CreateStage(c *gin.Context) {
	var payload request.CreateStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStructurePayload.HTTPStatus, errInvalidStructurePayload.ToHTTPError())
		return
	}

	stage, err := h.usecase.CreateStage(c.Request.Context(), c.Param("estimate_id"), payload.EpicID, payload.Name)
	if err != nil {
		appErr := mapStructureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromStage(stage))
}

func (h *StructureHandler) RenameStage(c *gin.Context) {
	var payload request.RenameRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStructurePayload.HTTPStatus, errInvalidStructurePayload.ToHTTPError())
		return
	}

	stage, err := h.usecase.RenameStage(c.Request.Context(), c.Param("estimate_id"), c.Param("stage_id"), payload.Name)
	if err != nil {
		appErr := mapStructureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStage(stage))
}

func (h *StructureHandler) MoveStage(c *gin.Context) {
	var payload request.MoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStructurePayload.HTTPStatus, errInvalidStructurePayload.ToHTTPError())
		return
	}

	stages, err := h.usecase.MoveStage(c.Request.Context(), c.Param("estimate_id"), c.Param("stage_id"), usecase.MoveDirection(payload.Direction))
	if err != nil {
		appErr := mapStructureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStages(stages))
}

func (h *StructureHandler) DeleteStage(c *gin.Context) {
	if err := h.usecase.DeleteStage(c.Request.Context(), c.Param("estimate_id"), c.Param("stage_id")); err != nil {
		appErr := mapStructureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListDuplicateStages surfaces same-named stages under one epic so the
// client can offer a merge.
func (h *StructureHandler) ListDuplicateStages(c *gin.Context) {
	groups, err := h.usecase.DuplicateStages(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapStructureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDuplicateStageGroups(groups))
}

func (h *StructureHandler) MergeStages(c *gin.Context) {
	var payload request.MergeStagesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStructurePayload.HTTPStatus, errInvalidStructurePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.MergeStages(c.Request.Context(), c.Param("estimate_id"), payload.KeepStageID, payload.DeleteStageID)
	if err != nil {
		appErr := mapStructureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMergeResult(result))
}

func mapStructureError(err error) *pkg.AppError {
	if appErr, ok := mapDomainError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidMoveDirection):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStagesNotMergeable):
		return pkg.NewDomainErrorSimple("STAGES_NOT_MERGEABLE", "Stages must belong to the same epic", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEpicNotFound):
		return pkg.NewDomainErrorSimple("EPIC_NOT_FOUND", "Epic not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageNotFound):
		return pkg.NewDomainErrorSimple("STAGE_NOT_FOUND", "Stage not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
