package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mindflow/internal/llm"
)

// LogRequest persists one LLM call record. Satisfies llm.RequestLogger.
func (s *Store) LogRequest(ctx context.Context, rec llm.RequestRecord) error {
	row := LLMRequestLog{
		Provider:     rec.Provider,
		Model:        rec.Model,
		Purpose:      rec.Purpose,
		InputTokens:  rec.InputTokens,
		OutputTokens: rec.OutputTokens,
		CostUSD:      rec.CostUSD,
		LatencyMs:    rec.LatencyMs,
		Success:      rec.Success,
		ErrorMessage: rec.ErrorMessage,
		RequestBody:  rec.RequestBody,
		ResponseBody: rec.ResponseBody,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("log llm request: %w", err)
	}
	return nil
}

// LLMRequestLogs returns the most recent provider calls, newest first.
func (s *Store) LLMRequestLogs(ctx context.Context, limit int) ([]LLMRequestLog, error) {
	q := s.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []LLMRequestLog
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list llm request logs: %w", err)
	}
	return rows, nil
}
