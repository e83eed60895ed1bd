package store

import (
	"context"
	"fmt"
)

// CreateTask inserts a to-do.
func (s *Store) CreateTask(ctx context.Context, task *Task) error {
	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// TaskByID looks up a task by primary key.
func (s *Store) TaskByID(ctx context.Context, id string) (*Task, error) {
	var task Task
	if err := s.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "task")
	}
	return &task, nil
}

// TasksByUser returns a user's tasks, newest first.
func (s *Store) TasksByUser(ctx context.Context, userID string) ([]Task, error) {
	var tasks []Task
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies the given column changes.
func (s *Store) UpdateTask(ctx context.Context, id string, changes map[string]any) (*Task, error) {
	res := s.db.WithContext(ctx).Model(&Task{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, fmt.Errorf("update task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("task: %w", ErrNotFound)
	}
	return s.TaskByID(ctx, id)
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&Task{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("task: %w", ErrNotFound)
	}
	return nil
}
