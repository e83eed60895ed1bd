package study

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/mindflow/internal/progress"
	"github.com/abhisek/mindflow/internal/store"
)

// Tasks lists the user's standalone to-dos.
func (s *Service) Tasks(ctx context.Context, userID string) ([]store.Task, error) {
	return s.store.TasksByUser(ctx, userID)
}

// CreateTask inserts a to-do owned by the user.
func (s *Service) CreateTask(ctx context.Context, userID string, task *store.Task) error {
	task.UserID = userID
	task.CreatedAt = s.now()
	return s.store.CreateTask(ctx, task)
}

// UpdateTask applies changes to an owned task. Flipping completed to true
// credits the ledger, once per task.
func (s *Service) UpdateTask(ctx context.Context, userID, taskID string, changes map[string]any) (*store.Task, error) {
	existing, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	task, err := s.store.UpdateTask(ctx, taskID, changes)
	if err != nil {
		return nil, err
	}

	if completed, ok := changes["completed"].(bool); ok && completed && !existing.Completed {
		ledgerID := fmt.Sprintf("task:%s", taskID)
		done, err := s.store.HasTaskCompletion(ctx, userID, ledgerID)
		if err == nil && !done {
			if _, err := s.store.AppendEvent(ctx, userID, progress.TaskCompleted(ledgerID, "", s.now())); err != nil {
				s.log.Warn("task completed but ledger append failed", zap.Error(err))
			}
		}
	}
	return task, nil
}

// DeleteTask removes an owned task.
func (s *Service) DeleteTask(ctx context.Context, userID, taskID string) error {
	if _, err := s.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}
	return s.store.DeleteTask(ctx, taskID)
}

// UpdateSession applies changes to an owned study session.
func (s *Service) UpdateSession(ctx context.Context, userID, sessionID string, changes map[string]any) (*store.StudySession, error) {
	existing, err := s.store.StudySessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}
	return s.store.UpdateStudySession(ctx, sessionID, changes)
}

func (s *Service) ownedTask(ctx context.Context, userID, taskID string) (*store.Task, error) {
	task, err := s.store.TaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, ErrForbidden
	}
	return task, nil
}
