package controllers

import (
	"net/http"
	"time"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"
	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/services"

	"github.com/gin-gonic/gin"
)

type MeasurementController struct {
	Svc *services.MeasurementService
}

func NewMeasurementController(svc *services.MeasurementService) *MeasurementController {
	return &MeasurementController{Svc: svc}
}

type AddMeasurementInput struct {
	GoalID uint                      `json:"goal_id" binding:"required"`
	Date   string                    `json:"date" binding:"required"`
	Value  services.MeasurementValue `json:"value" binding:"required"`
	Source string                    `json:"source"`
}

func (h *MeasurementController) AddMeasurement(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input AddMeasurementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date. Use YYYY-MM-DD"})
		return
	}

	source := models.MeasurementSource(input.Source)
	if input.Source == "" {
		source = models.MeasurementSourceManual
	}

	m, err := h.Svc.AddMeasurement(c.Request.Context(), userID, input.GoalID, date, input.Value, source)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *MeasurementController) ListMeasurements(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	goalID, ok := goalIDFromParam(c)
	if !ok {
		return
	}

	measurements, err := h.Svc.ListMeasurements(c.Request.Context(), userID, goalID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, measurements)
}
