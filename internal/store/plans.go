package store

import (
	"context"
	"fmt"
)

// CreatePlan inserts a study plan.
func (s *Store) CreatePlan(ctx context.Context, plan *StudyPlan) error {
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("create plan: %w", err)
	}
	return nil
}

// PlanByID returns a plan regardless of owner. Ownership checks belong to
// the service layer, which distinguishes forbidden from missing.
func (s *Store) PlanByID(ctx context.Context, id string) (*StudyPlan, error) {
	var plan StudyPlan
	if err := s.db.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "study plan")
	}
	return &plan, nil
}

// PlansByUser returns a user's plans, newest first.
func (s *Store) PlansByUser(ctx context.Context, userID string) ([]StudyPlan, error) {
	var plans []StudyPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

// LatestPlan returns the user's most recent plan.
func (s *Store) LatestPlan(ctx context.Context, userID string) (*StudyPlan, error) {
	var plan StudyPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&plan).Error
	if err != nil {
		return nil, notFound(err, "study plan")
	}
	return &plan, nil
}

// UpdatePlanDocument replaces the stored plan JSON, used after emotion
// adaptation or task completion rewrites the schedule.
func (s *Store) UpdatePlanDocument(ctx context.Context, id, planJSON string) error {
	res := s.db.WithContext(ctx).
		Model(&StudyPlan{}).
		Where("id = ?", id).
		Update("generated_plan", planJSON)
	if res.Error != nil {
		return fmt.Errorf("update plan: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("study plan: %w", ErrNotFound)
	}
	return nil
}
