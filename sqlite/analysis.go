package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Unsaif/pathrecon"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pathrecon.AnalysisService = (*AnalysisService)(nil)

// AnalysisService implements pathrecon.AnalysisService using SQLite.
// The pathway model is stored as a JSON column; match results are never
// persisted, only the analysis itself.
type AnalysisService struct {
	db *DB
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// HashSources computes a stable hex digest over a set of source files, used
// to relate a stored analysis back to the documents it was computed from.
func HashSources(files []pathrecon.SourceFile) string {
	h := xxhash.New()
	for _, f := range files {
		_, _ = h.WriteString(f.Name)
		_, _ = h.Write(f.Data)
	}
	sum := h.Sum64()
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(sum >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateAnalysis persists a new analysis, assigning ID and CreatedAt.
func (s *AnalysisService) CreateAnalysis(ctx context.Context, analysis *pathrecon.Analysis) error {
	if err := analysis.Validate(); err != nil {
		return err
	}

	analysis.ID = uuid.New().String()
	analysis.CreatedAt = time.Now().UTC()

	pathway, err := json.Marshal(analysis.Pathway)
	if err != nil {
		return fmt.Errorf("failed to encode pathway: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, name, model, source_hash, pathway, explanation, raw_response, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, analysis.ID, analysis.Name, analysis.Model, analysis.SourceHash, string(pathway),
		analysis.Explanation, analysis.RawResponse, analysis.CreatedAt.Format(time.RFC3339))

	return err
}

// FindAnalysisByID retrieves an analysis by ID.
func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*pathrecon.Analysis, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, model, source_hash, pathway, explanation, raw_response, created_at
		FROM analyses
		WHERE id = ?
	`, id)

	analysis, err := scanAnalysis(row.Scan)
	if err == sql.ErrNoRows {
		return nil, pathrecon.Errorf(pathrecon.ENOTFOUND, "analysis not found")
	}
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

// FindAnalyses retrieves analyses matching the filter, newest first.
func (s *AnalysisService) FindAnalyses(ctx context.Context, filter pathrecon.AnalysisFilter) ([]*pathrecon.Analysis, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, model, source_hash, pathway, explanation, raw_response, created_at FROM analyses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.SourceHash != nil {
		query.WriteString(" AND source_hash = ?")
		args = append(args, *filter.SourceHash)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*pathrecon.Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows.Scan)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}
	return analyses, rows.Err()
}

// DeleteAnalysis permanently removes an analysis.
func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return pathrecon.Errorf(pathrecon.ENOTFOUND, "analysis not found")
	}
	return nil
}

// scanAnalysis reads one analysis row via the given scan function.
func scanAnalysis(scan func(dest ...any) error) (*pathrecon.Analysis, error) {
	var analysis pathrecon.Analysis
	var pathway, createdAt string

	if err := scan(&analysis.ID, &analysis.Name, &analysis.Model, &analysis.SourceHash,
		&pathway, &analysis.Explanation, &analysis.RawResponse, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(pathway), &analysis.Pathway); err != nil {
		return nil, fmt.Errorf("failed to decode pathway: %w", err)
	}

	var err error
	analysis.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}
