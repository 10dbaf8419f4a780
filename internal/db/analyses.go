package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Analysis Methods
// -----------------------------------------------------------------------------

// SaveAnalysis stores an analysis result and returns the stored record
func (db *DB) SaveAnalysis(ctx context.Context, input *AnalysisInput) (*Analysis, error) {
	if input == nil {
		return nil, fmt.Errorf("analysis input is nil")
	}
	if input.Result.PositionID == "" {
		return nil, fmt.Errorf("analysis has no position id")
	}

	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	var hash *string
	if input.ContentHash != "" {
		hash = &input.ContentHash
	}

	a := Analysis{
		ID:          uuid.New(),
		PositionID:  input.Result.PositionID,
		FileName:    input.FileName,
		Score:       input.Result.Score,
		Confidence:  string(input.Result.ConfidenceLevel),
		ContentHash: hash,
		Result:      input.Result,
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (id, position_id, file_name, score, confidence_level, result, content_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		a.ID, a.PositionID, a.FileName, a.Score, a.Confidence, resultJSON, hash,
	).Scan(&a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return &a, nil
}

// GetAnalysis retrieves an analysis by ID. It returns nil, nil when absent.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, position_id, file_name, score, confidence_level, result, content_hash, created_at
		 FROM analyses WHERE id = $1`,
		id,
	)
	a, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return a, nil
}

// ListAnalysesByPosition lists the analyses of a position, best score first, and the
// total number matching the filter
func (db *DB) ListAnalysesByPosition(ctx context.Context, positionID string, opts ListAnalysesOptions) ([]Analysis, int, error) {
	opts = opts.normalize()

	var total int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM analyses WHERE position_id = $1 AND score >= $2`,
		positionID, opts.MinScore,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count analyses: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, position_id, file_name, score, confidence_level, result, content_hash, created_at
		 FROM analyses
		 WHERE position_id = $1 AND score >= $2
		 ORDER BY score DESC, created_at DESC
		 LIMIT $3 OFFSET $4`,
		positionID, opts.MinScore, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	analyses := make([]Analysis, 0)
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return analyses, total, nil
}

// DeleteAnalysis removes an analysis. It reports whether a row was deleted.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanAnalysis(row pgx.Row) (*Analysis, error) {
	var a Analysis
	var resultJSON []byte
	if err := row.Scan(&a.ID, &a.PositionID, &a.FileName, &a.Score, &a.Confidence,
		&resultJSON, &a.ContentHash, &a.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(resultJSON, &a.Result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis result: %w", err)
	}
	return &a, nil
}
