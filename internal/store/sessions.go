package store

import (
	"context"
	"fmt"
)

// CreateStudySession logs a block of study time.
func (s *Store) CreateStudySession(ctx context.Context, sess *StudySession) error {
	if err := s.db.WithContext(ctx).Create(sess).Error; err != nil {
		return fmt.Errorf("create study session: %w", err)
	}
	return nil
}

// StudySessionByID looks up a logged session by primary key.
func (s *Store) StudySessionByID(ctx context.Context, id string) (*StudySession, error) {
	var sess StudySession
	if err := s.db.WithContext(ctx).First(&sess, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "study session")
	}
	return &sess, nil
}

// StudySessionsByUser returns a user's logged sessions, newest first.
func (s *Store) StudySessionsByUser(ctx context.Context, userID string) ([]StudySession, error) {
	var sessions []StudySession
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("list study sessions: %w", err)
	}
	return sessions, nil
}

// UpdateStudySession applies the given column changes.
func (s *Store) UpdateStudySession(ctx context.Context, id string, changes map[string]any) (*StudySession, error) {
	res := s.db.WithContext(ctx).Model(&StudySession{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, fmt.Errorf("update study session: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("study session: %w", ErrNotFound)
	}
	return s.StudySessionByID(ctx, id)
}

// CreateEmotion records a mood check-in.
func (s *Store) CreateEmotion(ctx context.Context, entry *EmotionEntry) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create emotion entry: %w", err)
	}
	return nil
}

// EmotionsByUser returns a user's check-ins, newest first.
func (s *Store) EmotionsByUser(ctx context.Context, userID string) ([]EmotionEntry, error) {
	var entries []EmotionEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list emotion entries: %w", err)
	}
	return entries, nil
}
