package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"

	"gorm.io/gorm"
)

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

// GoalFilters narrows ListGoals. Nil fields mean "no filter".
type GoalFilters struct {
	Type   *models.GoalType
	Active *bool
}

// CreateGoal validates params, runs the advisory conflict check when
// the goal is to be created active, and inserts. The store's partial
// unique index is the authoritative conflict detector: a duplicated-key
// error from a racing create is translated into the same
// ActiveGoalConflictError the advisory check raises.
func (s *GoalService) CreateGoal(ctx context.Context, userID uint, goalType models.GoalType, rawParams json.RawMessage, startDate, endDate time.Time, active bool) (*models.Goal, error) {
	params, err := ValidateGoalParams(goalType, rawParams)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, &ValidationError{Field: "end_date", Message: "must not precede start_date"}
	}

	if active {
		if err := s.ensureNoActiveGoalOfType(ctx, userID, goalType); err != nil {
			return nil, err
		}
	}

	goal := models.Goal{
		UserID:    userID,
		Type:      goalType,
		Params:    params,
		StartDate: dayStart(startDate),
		EndDate:   dayStart(endDate),
		Active:    active,
		Status:    models.GoalStatusActive,
	}
	if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ActiveGoalConflictError{Type: goalType}
		}
		return nil, err
	}
	return &goal, nil
}

// HasActiveGoalOfType is an existence check, not a fetch.
func (s *GoalService) HasActiveGoalOfType(ctx context.Context, userID uint, goalType models.GoalType) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Goal{}).
		Where("user_id = ? AND type = ? AND active = ?", userID, goalType, true).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

func (s *GoalService) ensureNoActiveGoalOfType(ctx context.Context, userID uint, goalType models.GoalType) error {
	exists, err := s.HasActiveGoalOfType(ctx, userID, goalType)
	if err != nil {
		return err
	}
	if exists {
		return &ActiveGoalConflictError{Type: goalType}
	}
	return nil
}

func (s *GoalService) GetGoal(ctx context.Context, userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// ListGoals fetches everything for the user and applies type/active
// filters in memory; per-user goal counts are small.
func (s *GoalService) ListGoals(ctx context.Context, userID uint, filters GoalFilters) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}

	out := goals[:0]
	for _, g := range goals {
		if filters.Type != nil && g.Type != *filters.Type {
			continue
		}
		if filters.Active != nil && g.Active != *filters.Active {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (s *GoalService) DeactivateGoal(ctx context.Context, userID, goalID uint) error {
	goal, err := s.GetGoal(ctx, userID, goalID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Model(goal).
		Updates(map[string]interface{}{"active": false, "status": models.GoalStatusDeactivated}).Error
}

// SetActiveGoal reactivates a goal, deactivating any sibling active
// goal of the same type first so the one-active-per-type invariant
// holds when the second write lands. Both writes run in one
// transaction; Postgres supports it, so there is no window where the
// user has zero or two active goals of the type.
func (s *GoalService) SetActiveGoal(ctx context.Context, userID, goalID uint) error {
	goal, err := s.GetGoal(ctx, userID, goalID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Goal{}).
			Where("user_id = ? AND type = ? AND active = ? AND id <> ?", userID, goal.Type, true, goal.ID).
			Updates(map[string]interface{}{"active": false, "status": models.GoalStatusDeactivated}).Error; err != nil {
			return err
		}
		return tx.Model(goal).
			Updates(map[string]interface{}{"active": true, "status": models.GoalStatusActive}).Error
	})
}

// DeleteGoal is a hard delete; Unscoped bypasses gorm.Model's
// soft-delete so the row cannot linger and trip the partial unique
// index later.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, goalID uint) error {
	goal, err := s.GetGoal(ctx, userID, goalID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Unscoped().Delete(goal).Error
}
