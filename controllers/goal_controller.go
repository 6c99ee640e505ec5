package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"
	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Svc      *services.GoalService
	Progress *services.ProgressService
}

func NewGoalController(svc *services.GoalService, progress *services.ProgressService) *GoalController {
	return &GoalController{Svc: svc, Progress: progress}
}

type CreateGoalInput struct {
	Type      string          `json:"type" binding:"required"`
	Params    json.RawMessage `json:"params" binding:"required"`
	StartDate string          `json:"start_date" binding:"required"`
	EndDate   string          `json:"end_date" binding:"required"`
	Active    *bool           `json:"active"`
}

func (h *GoalController) CreateGoal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input CreateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date. Use YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date. Use YYYY-MM-DD"})
		return
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	goal, err := h.Svc.CreateGoal(c.Request.Context(), userID, models.GoalType(input.Type), input.Params, start, end, active)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (h *GoalController) ListGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var filters services.GoalFilters
	if v := c.Query("type"); v != "" {
		t := models.GoalType(v)
		filters.Type = &t
	}
	if v := c.Query("active"); v != "" {
		active := v == "true"
		filters.Active = &active
	}

	goals, err := h.Svc.ListGoals(c.Request.Context(), userID, filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (h *GoalController) GetGoalProgress(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	goalID, ok := goalIDFromParam(c)
	if !ok {
		return
	}

	progress, err := h.Progress.GetGoalProgress(c.Request.Context(), userID, goalID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *GoalController) DeactivateGoal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	goalID, ok := goalIDFromParam(c)
	if !ok {
		return
	}

	if err := h.Svc.DeactivateGoal(c.Request.Context(), userID, goalID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GoalController) SetActiveGoal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	goalID, ok := goalIDFromParam(c)
	if !ok {
		return
	}

	if err := h.Svc.SetActiveGoal(c.Request.Context(), userID, goalID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GoalController) DeleteGoal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	goalID, ok := goalIDFromParam(c)
	if !ok {
		return
	}

	if err := h.Svc.DeleteGoal(c.Request.Context(), userID, goalID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- helpers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}

func goalIDFromParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps typed service errors onto HTTP statuses.
// Validation and conflict errors are user-facing; anything else is
// logged and kept generic.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var conflictErr *services.ActiveGoalConflictError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Error(), "type": conflictErr.Type})
	case errors.Is(err, services.ErrGoalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
	default:
		log.Printf("goal request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
