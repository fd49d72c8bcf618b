package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) ConversationCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM conversation WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func (r *repoPG) MessageCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM message m
		JOIN conversation c ON c.id = m.conversation_id
		WHERE c.user_id = $1`, userID).Scan(&n)
	return n, err
}

func (r *repoPG) EmergencyCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM message m
		JOIN conversation c ON c.id = m.conversation_id
		WHERE c.user_id = $1 AND m.role = 'assistant' AND m.emergency`, userID).Scan(&n)
	return n, err
}

func (r *repoPG) SeverityBreakdown(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.severity, COUNT(*) FROM message m
		JOIN conversation c ON c.id = m.conversation_id
		WHERE c.user_id = $1 AND m.role = 'assistant' AND m.severity <> ''
		GROUP BY m.severity`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var severity string
		var count int
		if err := rows.Scan(&severity, &count); err != nil {
			return nil, err
		}
		out[severity] = count
	}
	return out, rows.Err()
}

func (r *repoPG) TopSymptoms(ctx context.Context, userID uuid.UUID, limit int) ([]SymptomFrequency, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.symptom, COUNT(*) AS count
		FROM message m
		JOIN conversation c ON c.id = m.conversation_id
		CROSS JOIN LATERAL unnest(m.symptoms) AS s(symptom)
		WHERE c.user_id = $1 AND m.role = 'assistant'
		GROUP BY s.symptom
		ORDER BY count DESC, s.symptom ASC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SymptomFrequency
	for rows.Next() {
		var sf SymptomFrequency
		if err := rows.Scan(&sf.Symptom, &sf.Count); err != nil {
			return nil, err
		}
		out = append(out, sf)
	}
	return out, rows.Err()
}

func (r *repoPG) SeverityTimeline(ctx context.Context, userID uuid.UUID, days int) ([]SeverityPoint, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_trunc('day', m.created_at) AS day, m.severity, COUNT(*)
		FROM message m
		JOIN conversation c ON c.id = m.conversation_id
		WHERE c.user_id = $1 AND m.role = 'assistant' AND m.severity <> ''
			AND m.created_at >= NOW() - ($2 || ' days')::interval
		GROUP BY day, m.severity
		ORDER BY day ASC`, userID, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SeverityPoint
	for rows.Next() {
		var p SeverityPoint
		if err := rows.Scan(&p.Day, &p.Severity, &p.Count); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
