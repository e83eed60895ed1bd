package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abhisek/mindflow/internal/progress"
)

// AppendEvent writes one ledger row and refreshes the cached stats
// snapshot in the same transaction. Busy sqlite databases get one retry.
func (s *Store) AppendEvent(ctx context.Context, userID string, event progress.Event) (*UserStats, error) {
	var stats *UserStats

	apply := func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			row := eventRow(userID, event)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}

			current, err := statsLocked(tx, userID)
			if err != nil {
				return err
			}

			next := progress.Apply(toState(current), event)
			updated := fromState(userID, next)
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				UpdateAll: true,
			}).Create(&updated).Error; err != nil {
				return err
			}

			stats = &updated
			return nil
		})
	}

	if err := apply(); err != nil {
		// One retry covers transient lock contention.
		if err = apply(); err != nil {
			return nil, fmt.Errorf("append progress event: %w", err)
		}
	}
	return stats, nil
}

// EventsByUser returns a user's full ledger in chronological order.
func (s *Store) EventsByUser(ctx context.Context, userID string) ([]progress.Event, error) {
	var rows []ProgressEvent
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list progress events: %w", err)
	}

	events := make([]progress.Event, len(rows))
	for i, row := range rows {
		events[i] = progress.Event{
			Kind:      progress.EventKind(row.Kind),
			TaskID:    row.TaskID,
			Subject:   row.Subject,
			Emotion:   row.Emotion,
			Minutes:   row.Minutes,
			Timestamp: row.CreatedAt,
		}
	}
	return events, nil
}

// StatsByUser returns the cached snapshot, or a zero-value snapshot for
// users who have no events yet.
func (s *Store) StatsByUser(ctx context.Context, userID string) (*UserStats, error) {
	var stats UserStats
	err := s.db.WithContext(ctx).First(&stats, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fresh := fromState(userID, progress.State{Level: progress.Level(0)})
		return &fresh, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return &stats, nil
}

// HasTaskCompletion reports whether the ledger already holds a completion
// for the given task, making completion idempotent.
func (s *Store) HasTaskCompletion(ctx context.Context, userID, taskID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&ProgressEvent{}).
		Where("user_id = ? AND kind = ? AND task_id = ?", userID, string(progress.EventTaskCompleted), taskID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check task completion: %w", err)
	}
	return count > 0, nil
}

func eventRow(userID string, e progress.Event) ProgressEvent {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return ProgressEvent{
		UserID:    userID,
		Kind:      string(e.Kind),
		TaskID:    e.TaskID,
		Subject:   e.Subject,
		Emotion:   e.Emotion,
		Minutes:   e.Minutes,
		CreatedAt: ts,
	}
}

func statsLocked(tx *gorm.DB, userID string) (*UserStats, error) {
	var stats UserStats
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&stats, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}

func toState(stats *UserStats) progress.State {
	if stats == nil {
		return progress.State{Level: progress.Level(0)}
	}
	return stats.State()
}

// State converts the snapshot row back into the ledger's aggregate form.
func (stats *UserStats) State() progress.State {
	st := progress.State{
		XP:             stats.XP,
		Level:          stats.Level,
		TasksCompleted: stats.TasksCompleted,
		PlansCreated:   stats.PlansCreated,
		EmotionsLogged: stats.EmotionsLogged,
		SessionsLogged: stats.SessionsLogged,
		TotalMinutes:   stats.TotalStudyTime,
		CurrentStreak:  stats.CurrentStreak,
		LongestStreak:  stats.LongestStreak,
	}
	if stats.LastStudyDate != nil {
		st.LastActivityDate = *stats.LastStudyDate
	}
	return st
}

func fromState(userID string, st progress.State) UserStats {
	stats := UserStats{
		UserID:         userID,
		XP:             st.XP,
		Level:          st.Level,
		CurrentStreak:  st.CurrentStreak,
		LongestStreak:  st.LongestStreak,
		TotalStudyTime: st.TotalMinutes,
		TasksCompleted: st.TasksCompleted,
		PlansCreated:   st.PlansCreated,
		EmotionsLogged: st.EmotionsLogged,
		SessionsLogged: st.SessionsLogged,
	}
	if !st.LastActivityDate.IsZero() {
		d := st.LastActivityDate
		stats.LastStudyDate = &d
	}
	return stats
}
