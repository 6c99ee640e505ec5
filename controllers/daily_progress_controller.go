package controllers

import (
	"net/http"
	"time"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/services"

	"github.com/gin-gonic/gin"
)

type DailyProgressController struct {
	Svc *services.DailyProgressService
}

func NewDailyProgressController(svc *services.DailyProgressService) *DailyProgressController {
	return &DailyProgressController{Svc: svc}
}

type UpsertDayInput struct {
	Date     string  `json:"date" binding:"required"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (h *DailyProgressController) UpsertDay(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input UpsertDayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date. Use YYYY-MM-DD"})
		return
	}

	if err := h.Svc.UpsertDay(c.Request.Context(), userID, date, input.Calories, input.Protein, input.Carbs, input.Fat); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DailyProgressController) GetHistory(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	history, err := h.Svc.History(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
