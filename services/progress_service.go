package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"

	"gorm.io/gorm"
)

// ProgressService dispatches a goal to the matching progress engine and
// applies auto-finalization on read.
type ProgressService struct {
	db      *gorm.DB
	profile *ProfileService

	// SkipMissingStreakDays switches streak goals from strict
	// missing-day handling (unlogged day breaks the run) to skip mode
	// (unlogged days are ignored). Strict is the default.
	SkipMissingStreakDays bool
}

func NewProgressService(db *gorm.DB, profile *ProfileService) *ProgressService {
	return &ProgressService{db: db, profile: profile}
}

// ComputeGoalProgress gathers the goal's inputs and runs the engine for
// its type. No writes happen here.
func (s *ProgressService) ComputeGoalProgress(ctx context.Context, goal *models.Goal) (*GoalProgress, error) {
	return s.computeAsOf(ctx, goal, time.Now())
}

func (s *ProgressService) computeAsOf(ctx context.Context, goal *models.Goal, asOf time.Time) (*GoalProgress, error) {
	switch goal.Type {
	case models.GoalTypeCalorieStreak, models.GoalTypeProteinStreak:
		days, err := s.aggregatesInRange(ctx, goal)
		if err != nil {
			return nil, err
		}
		opts := StreakOptions{SkipMissingDays: s.SkipMissingStreakDays}
		if goal.Type == models.GoalTypeCalorieStreak {
			tdee, err := s.profile.TDEEForUser(ctx, goal.UserID)
			if err != nil {
				return nil, err
			}
			opts.TDEE = tdee
		}
		return computeStreakProgress(goal, days, asOf, opts)

	case models.GoalTypeBodyFat, models.GoalTypeWeight, models.GoalTypeLeanMassGain:
		measurements, err := s.measurementsInRange(ctx, goal)
		if err != nil {
			return nil, err
		}
		return computeTrendProgress(goal, measurements)

	default:
		return nil, fmt.Errorf("no progress engine for goal type %q", goal.Type)
	}
}

// GetGoalProgress fetches the goal, computes its progress, and flips an
// active, not-yet-achieved goal to achieved/inactive the first time it
// reads as achieved. Goals already achieved or deliberately deactivated
// are never touched again, whatever the math says now — finalization is
// one-way and idempotent. A failed finalize write is logged and does
// not mask the computed progress.
func (s *ProgressService) GetGoalProgress(ctx context.Context, userID, goalID uint) (*GoalProgress, error) {
	goal, err := s.getGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	progress, err := s.ComputeGoalProgress(ctx, goal)
	if err != nil {
		return nil, err
	}

	if progress.Achieved && goal.Status != models.GoalStatusAchieved && goal.Active {
		if err := s.finalize(ctx, goal); err != nil {
			log.Printf("auto-finalize goal %d failed: %v", goal.ID, err)
		}
	}
	return progress, nil
}

func (s *ProgressService) finalize(ctx context.Context, goal *models.Goal) error {
	return s.db.WithContext(ctx).
		Model(goal).
		Updates(map[string]interface{}{"active": false, "status": models.GoalStatusAchieved}).Error
}

func (s *ProgressService) getGoal(ctx context.Context, userID, goalID uint) (*models.Goal, error) {
	return NewGoalService(s.db).GetGoal(ctx, userID, goalID)
}

func (s *ProgressService) aggregatesInRange(ctx context.Context, goal *models.Goal) ([]models.DailyProgress, error) {
	var days []models.DailyProgress
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", goal.UserID, dayStart(goal.StartDate), dayEnd(goal.EndDate)).
		Order("date ASC").
		Find(&days).Error
	return days, err
}

func (s *ProgressService) measurementsInRange(ctx context.Context, goal *models.Goal) ([]models.Measurement, error) {
	var measurements []models.Measurement
	err := s.db.WithContext(ctx).
		Where("goal_id = ? AND date BETWEEN ? AND ?", goal.ID, dayStart(goal.StartDate), dayEnd(goal.EndDate)).
		Order("date ASC").
		Find(&measurements).Error
	return measurements, err
}
