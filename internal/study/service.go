// Package study is the application service behind the HTTP handlers. It
// ties plan generation, persistence and the progress ledger together and
// enforces per-user ownership.
package study

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/mindflow/internal/achievements"
	"github.com/abhisek/mindflow/internal/plangen"
	"github.com/abhisek/mindflow/internal/planner"
	"github.com/abhisek/mindflow/internal/progress"
	"github.com/abhisek/mindflow/internal/store"
	"github.com/abhisek/mindflow/internal/subjects"
)

// ErrForbidden is returned when a user touches another user's resource.
var ErrForbidden = errors.New("forbidden")

// Service coordinates plan generation and progress tracking.
type Service struct {
	store     *store.Store
	generator plangen.Generator
	adapter   *plangen.Adapter
	estimator *subjects.Estimator
	log       *zap.Logger
	now       func() time.Time
}

// NewService wires the dependencies. The estimator must be the same
// instance the generator's builder uses, so custom subjects registered
// here affect generation. log and now may be nil.
func NewService(s *store.Store, gen plangen.Generator, adapter *plangen.Adapter, est *subjects.Estimator, log *zap.Logger, now func() time.Time) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Service{store: s, generator: gen, adapter: adapter, estimator: est, log: log, now: now}
}

// CreatePlanInput is the request surface for plan generation.
type CreatePlanInput struct {
	RawTasks       string
	AvailableHours int
	Subject        string
	CustomSubject  string
	KnowledgeLevel subjects.KnowledgeLevel
	Challenges     []string
	EnergyTime     planner.EnergyTime
}

// PlanResult pairs the stored row with its decoded document.
type PlanResult struct {
	Record *store.StudyPlan
	Plan   *plangen.Plan
}

// GeneratePlan builds a plan, persists it and credits the ledger. An
// empty subject is inferred from the task text by keyword.
func (s *Service) GeneratePlan(ctx context.Context, userID string, in CreatePlanInput) (*PlanResult, error) {
	subject := in.Subject
	if in.CustomSubject != "" {
		subject = strings.ToLower(strings.TrimSpace(in.CustomSubject))
		s.estimator.RegisterCustom(subject, 0)
	}
	if subject == "" {
		subject = subjects.Detect(in.RawTasks)
	}

	level := in.KnowledgeLevel
	if !level.Valid() {
		level = subjects.Intermediate
	}

	plan, err := s.generator.Generate(ctx, planner.BuildRequest{
		RawTasks:   in.RawTasks,
		Hours:      in.AvailableHours,
		Subject:    subject,
		Level:      level,
		Challenges: in.Challenges,
		EnergyTime: in.EnergyTime,
	})
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	doc, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("encode plan: %w", err)
	}

	record := &store.StudyPlan{
		UserID:         userID,
		Subject:        subject,
		CustomSubject:  in.CustomSubject,
		KnowledgeLevel: string(level),
		AvailableHours: in.AvailableHours,
		Challenges:     encodeChallenges(in.Challenges),
		EnergyTime:     string(in.EnergyTime),
		RawTasks:       in.RawTasks,
		GeneratedPlan:  string(doc),
		Fallback:       plan.Fallback,
		CreatedAt:      s.now(),
	}
	if err := s.store.CreatePlan(ctx, record); err != nil {
		return nil, err
	}

	if _, err := s.store.AppendEvent(ctx, userID, progress.PlanCreated(s.now())); err != nil {
		s.log.Warn("plan created but ledger append failed", zap.Error(err))
	}

	s.log.Info("study plan generated",
		zap.String("plan_id", record.ID),
		zap.String("subject", subject),
		zap.Bool("fallback", plan.Fallback),
		zap.Int("tasks", plan.TotalTasks))

	return &PlanResult{Record: record, Plan: plan}, nil
}

// RegeneratePlan builds a fresh plan from an existing plan's inputs. The
// old plan is left untouched; the new one simply becomes the latest.
func (s *Service) RegeneratePlan(ctx context.Context, userID, planID string) (*PlanResult, error) {
	record, err := s.store.PlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrForbidden
	}

	return s.GeneratePlan(ctx, userID, CreatePlanInput{
		RawTasks:       record.RawTasks,
		AvailableHours: record.AvailableHours,
		Subject:        record.Subject,
		CustomSubject:  record.CustomSubject,
		KnowledgeLevel: subjects.KnowledgeLevel(record.KnowledgeLevel),
		Challenges:     DecodeChallenges(record.Challenges),
		EnergyTime:     planner.EnergyTime(record.EnergyTime),
	})
}

// Plan returns one plan, enforcing ownership.
func (s *Service) Plan(ctx context.Context, userID, planID string) (*PlanResult, error) {
	record, err := s.store.PlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrForbidden
	}
	return decodePlan(record)
}

// Plans lists the user's plans, newest first.
func (s *Service) Plans(ctx context.Context, userID string) ([]store.StudyPlan, error) {
	return s.store.PlansByUser(ctx, userID)
}

// LatestPlan returns the user's most recent plan.
func (s *Service) LatestPlan(ctx context.Context, userID string) (*PlanResult, error) {
	record, err := s.store.LatestPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	return decodePlan(record)
}

// AdaptResult is an emotion-adapted plan plus feedback.
type AdaptResult struct {
	Record   *store.StudyPlan
	Plan     *plangen.Plan
	Feedback plangen.EmotionFeedback
}

// AdaptToEmotion reorders a plan for the given emotion, persists the new
// order, and records the check-in in both the emotions table and the
// ledger.
func (s *Service) AdaptToEmotion(ctx context.Context, userID, planID string, emotion planner.Emotion, intensity int, note string) (*AdaptResult, error) {
	if !emotion.Valid() {
		return nil, fmt.Errorf("unknown emotion %q", emotion)
	}

	result, err := s.Plan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	items, feedback := s.adapter.Adapt(ctx, result.Plan.Items, emotion)
	result.Plan.Items = items
	result.Plan.PersonalizedMessage = feedback.Message

	doc, err := json.Marshal(result.Plan)
	if err != nil {
		return nil, fmt.Errorf("encode plan: %w", err)
	}
	if err := s.store.UpdatePlanDocument(ctx, planID, string(doc)); err != nil {
		return nil, err
	}
	result.Record.GeneratedPlan = string(doc)

	if err := s.recordEmotion(ctx, userID, string(emotion), intensity, note); err != nil {
		s.log.Warn("plan adapted but emotion record failed", zap.Error(err))
	}

	s.log.Info("plan adapted to emotion",
		zap.String("plan_id", planID),
		zap.String("emotion", string(emotion)))

	return &AdaptResult{Record: result.Record, Plan: result.Plan, Feedback: feedback}, nil
}

// RecordEmotion logs a standalone mood check-in and credits the ledger.
func (s *Service) RecordEmotion(ctx context.Context, userID, emotion string, intensity int, note string) (*store.UserStats, error) {
	if err := s.recordEmotion(ctx, userID, emotion, intensity, note); err != nil {
		return nil, err
	}
	return s.store.StatsByUser(ctx, userID)
}

func (s *Service) recordEmotion(ctx context.Context, userID, emotion string, intensity int, note string) error {
	entry := &store.EmotionEntry{
		UserID:     userID,
		Emotion:    emotion,
		Intensity:  intensity,
		Context:    note,
		RecordedAt: s.now(),
	}
	if err := s.store.CreateEmotion(ctx, entry); err != nil {
		return err
	}
	_, err := s.store.AppendEvent(ctx, userID, progress.EmotionChecked(emotion, s.now()))
	return err
}

// Emotions lists the user's check-ins, newest first.
func (s *Service) Emotions(ctx context.Context, userID string) ([]store.EmotionEntry, error) {
	return s.store.EmotionsByUser(ctx, userID)
}

// CompleteTask marks a schedule item done and awards XP exactly once per
// item, no matter how many times the client sends the request.
func (s *Service) CompleteTask(ctx context.Context, userID, planID string, itemID int) (*PlanResult, *store.UserStats, error) {
	result, err := s.Plan(ctx, userID, planID)
	if err != nil {
		return nil, nil, err
	}

	idx := -1
	for i, it := range result.Plan.Items {
		if it.ID == itemID && !it.IsBreak() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, fmt.Errorf("task item %d: %w", itemID, store.ErrNotFound)
	}

	ledgerID := fmt.Sprintf("%s#%d", planID, itemID)
	done, err := s.store.HasTaskCompletion(ctx, userID, ledgerID)
	if err != nil {
		return nil, nil, err
	}

	result.Plan.Items[idx].Completed = true
	result.Plan.Items[idx].Progress = 100
	doc, err := json.Marshal(result.Plan)
	if err != nil {
		return nil, nil, fmt.Errorf("encode plan: %w", err)
	}
	if err := s.store.UpdatePlanDocument(ctx, planID, string(doc)); err != nil {
		return nil, nil, err
	}
	result.Record.GeneratedPlan = string(doc)

	if done {
		stats, err := s.store.StatsByUser(ctx, userID)
		return result, stats, err
	}

	event := progress.TaskCompleted(ledgerID, result.Plan.Items[idx].Subject, s.now())
	stats, err := s.store.AppendEvent(ctx, userID, event)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info("task completed",
		zap.String("plan_id", planID),
		zap.Int("item_id", itemID),
		zap.Int("xp", stats.XP))

	return result, stats, nil
}

// RecordSession logs a study session and credits the ledger with its
// minutes.
func (s *Service) RecordSession(ctx context.Context, userID string, sess *store.StudySession) (*store.UserStats, error) {
	sess.UserID = userID
	if sess.StartedAt.IsZero() {
		sess.StartedAt = s.now()
	}
	if err := s.store.CreateStudySession(ctx, sess); err != nil {
		return nil, err
	}
	return s.store.AppendEvent(ctx, userID, progress.SessionLogged(sess.Duration, s.now()))
}

// Sessions lists logged study sessions, newest first.
func (s *Service) Sessions(ctx context.Context, userID string) ([]store.StudySession, error) {
	return s.store.StudySessionsByUser(ctx, userID)
}

// Stats returns the user's cached progress snapshot.
func (s *Service) Stats(ctx context.Context, userID string) (*store.UserStats, error) {
	return s.store.StatsByUser(ctx, userID)
}

// Achievements evaluates the badge catalog against the user's progress.
func (s *Service) Achievements(ctx context.Context, userID string) ([]achievements.Status, error) {
	stats, err := s.store.StatsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return achievements.Evaluate(stats.State()), nil
}

func decodePlan(record *store.StudyPlan) (*PlanResult, error) {
	var plan plangen.Plan
	if err := json.Unmarshal([]byte(record.GeneratedPlan), &plan); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", record.ID, err)
	}
	return &PlanResult{Record: record, Plan: &plan}, nil
}

func encodeChallenges(challenges []string) string {
	if len(challenges) == 0 {
		return "[]"
	}
	b, err := json.Marshal(challenges)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeChallenges reverses encodeChallenges for API responses.
func DecodeChallenges(raw string) []string {
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
