package storage

import (
	"context"
	"fmt"
	"strings"
)

const (
	CallStatusOK    = "ok"
	CallStatusError = "error"
)

// ModelCallRecord describes one model call. It never carries document text or
// model output.
type ModelCallRecord struct {
	CallID     string
	RequestID  string
	Operation  string
	Provider   string
	Model      string
	Status     string
	ErrorType  string
	DurationMS int64
}

type ModelCallRepo struct {
	db *DB
}

func NewModelCallRepo(db *DB) *ModelCallRepo {
	return &ModelCallRepo{db: db}
}

const modelCallsDDL = `
CREATE TABLE IF NOT EXISTS model_calls (
  call_id     uuid PRIMARY KEY,
  request_id  text,
  operation   text NOT NULL,
  provider    text NOT NULL,
  model       text NOT NULL,
  status      text NOT NULL,
  error_type  text,
  duration_ms bigint NOT NULL DEFAULT 0,
  created_at  timestamptz NOT NULL DEFAULT now()
)`

func (r *ModelCallRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Pool.Exec(ctx, modelCallsDDL); err != nil {
		return fmt.Errorf("create model_calls: %w", err)
	}
	return nil
}

func (r *ModelCallRepo) Insert(ctx context.Context, rec ModelCallRecord) error {
	rec = normalizeRecord(rec)
	_, err := r.db.Pool.Exec(ctx, `
INSERT INTO model_calls(call_id, request_id, operation, provider, model, status, error_type, duration_ms)
VALUES ($1::uuid, NULLIF($2,''), $3, $4, $5, $6, NULLIF($7,''), $8)`,
		rec.CallID, rec.RequestID, rec.Operation, rec.Provider, rec.Model, rec.Status, rec.ErrorType, rec.DurationMS)
	if err != nil {
		return fmt.Errorf("insert model call: %w", err)
	}
	return nil
}

func normalizeRecord(rec ModelCallRecord) ModelCallRecord {
	rec.Operation = strings.TrimSpace(rec.Operation)
	if rec.Provider == "" {
		rec.Provider = "unknown"
	}
	if rec.Model == "" {
		rec.Model = "unknown"
	}
	if rec.Status == "" {
		rec.Status = CallStatusOK
		if rec.ErrorType != "" {
			rec.Status = CallStatusError
		}
	}
	if rec.DurationMS < 0 {
		rec.DurationMS = 0
	}
	return rec
}
