package routes

import (
	"scopeworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
)

func addEstimateRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	lineItemHandler *handlers.LineItemHandler,
	structureHandler *handlers.StructureHandler,
	milestoneHandler *handlers.MilestoneHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:estimate_id", estimateHandler.GetEstimate)
		estimates.PATCH("/:estimate_id", estimateHandler.UpdateEstimateConfig)
		estimates.POST("/:estimate_id/transition", estimateHandler.TransitionEstimate)
		estimates.POST("/:estimate_id/recalculate", estimateHandler.RecalculateEstimate)
		estimates.GET("/:estimate_id/contingency", estimateHandler.ContingencyInsights)
	}

	lineItems := rg.Group(PathEstimates + "/:estimate_id/line-items")
	{
		lineItems.POST("", lineItemHandler.CreateLineItem)
		lineItems.GET("", lineItemHandler.ListLineItems)
		lineItems.PATCH("/:item_id", lineItemHandler.UpdateLineItem)
		lineItems.DELETE("/:item_id", lineItemHandler.DeleteLineItem)
		lineItems.POST("/:item_id/split", lineItemHandler.SplitLineItem)
		lineItems.POST("/bulk-update", lineItemHandler.BulkUpdateLineItems)
		lineItems.POST("/bulk-assign", lineItemHandler.BulkAssignLineItems)
	}

	epics := rg.Group(PathEstimates + "/:estimate_id/epics")
	{
		epics.POST("", structureHandler.CreateEpic)
		epics.PATCH("/:epic_id", structureHandler.RenameEpic)
		epics.POST("/:epic_id/move", structureHandler.MoveEpic)
		epics.DELETE("/:epic_id", structureHandler.DeleteEpic)
	}

	stages := rg.Group(PathEstimates + "/:estimate_id/stages")
	{
		stages.POST("", structureHandler.CreateStage)
		stages.PATCH("/:stage_id", structureHandler.RenameStage)
		stages.POST("/:stage_id/move", structureHandler.MoveStage)
		stages.DELETE("/:stage_id", structureHandler.DeleteStage)
		stages.GET("/duplicates", structureHandler.ListDuplicateStages)
		stages.POST("/merge", structureHandler.MergeStages)
	}

	milestones := rg.Group(PathEstimates + "/:estimate_id/milestones")
	{
		milestones.POST("", milestoneHandler.CreateMilestone)
		milestones.GET("", milestoneHandler.ListMilestones)
		milestones.PATCH("/:milestone_id", milestoneHandler.UpdateMilestone)
		milestones.DELETE("/:milestone_id", milestoneHandler.DeleteMilestone)
		milestones.GET("/reconciliation", milestoneHandler.ReconcileMilestones)
	}
}
