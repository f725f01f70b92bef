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

var errInvalidLineItemPayload = pkg.NewDomainErrorSimple("INVALID_LINE_ITEM_INPUT", "Invalid line item payload", http.StatusBadRequest)

// LineItemHandler handles HTTP requests for estimate line items, including
// split and bulk operations.

type LineItemHandler struct {
	usecase usecase.ILineItemUseCase
}

func NewLineItemHandler(uc usecase.ILineItemUseCase) *LineItemHandler {
	return &LineItemHandler{usecase: uc}
}

func (h *LineItemHandler) CreateLineItem(c *gin.Context) {
	var payload request.CreateLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLineItemPayload.HTTPStatus, errInvalidLineItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), c.Param("estimate_id"), payload.ToInput())
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLineItem(item))
}

func (h *LineItemHandler) ListLineItems(c *gin.Context) {
	items, err := h.usecase.GetByEstimateID(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItems(items))
}

func (h *LineItemHandler) UpdateLineItem(c *gin.Context) {
	var payload request.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLineItemPayload.HTTPStatus, errInvalidLineItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), c.Param("estimate_id"), c.Param("item_id"), payload.ToPatch())
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItem(item))
}

// SplitLineItem replaces one item with two; the original is consumed by the
// split and no longer exists afterwards.
func (h *LineItemHandler) SplitLineItem(c *gin.Context) {
	var payload request.SplitLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLineItemPayload.HTTPStatus, errInvalidLineItemPayload.ToHTTPError())
		return
	}

	items, err := h.usecase.Split(c.Request.Context(), c.Param("estimate_id"), c.Param("item_id"), payload.FirstHours, payload.SecondHours)
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLineItems(items))
}

func (h *LineItemHandler) BulkUpdateLineItems(c *gin.Context) {
	var payload request.BulkUpdateLineItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLineItemPayload.HTTPStatus, errInvalidLineItemPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.BulkUpdate(c.Request.Context(), c.Param("estimate_id"), payload.ItemIDs, payload.Patch.ToPatch())
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBulkResult(result))
}

func (h *LineItemHandler) BulkAssignLineItems(c *gin.Context) {
	var payload request.BulkAssignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLineItemPayload.HTTPStatus, errInvalidLineItemPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.BulkAssign(c.Request.Context(), c.Param("estimate_id"), payload.ItemIDs, payload.ToBinding())
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBulkResult(result))
}

func (h *LineItemHandler) DeleteLineItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("estimate_id"), c.Param("item_id")); err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapLineItemError(err error) *pkg.AppError {
	if appErr, ok := mapDomainError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
