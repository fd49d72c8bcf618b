package profile

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carelink/carelink/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const profileCols = `id, user_id, date_of_birth, gender, height_cm, weight_kg,
	known_conditions, medications, allergies, created_at, updated_at`

func (r *repoPG) scan(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.UserID, &p.DateOfBirth, &p.Gender, &p.HeightCM,
		&p.WeightKG, &p.KnownConditions, &p.Medications, &p.Allergies,
		&p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	return r.scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+profileCols+` FROM health_profile WHERE user_id = $1`, userID))
}

func (r *repoPG) Upsert(ctx context.Context, p *Profile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO health_profile
			(id, user_id, date_of_birth, gender, height_cm, weight_kg,
			 known_conditions, medications, allergies)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (user_id) DO UPDATE SET
			date_of_birth=EXCLUDED.date_of_birth, gender=EXCLUDED.gender,
			height_cm=EXCLUDED.height_cm, weight_kg=EXCLUDED.weight_kg,
			known_conditions=EXCLUDED.known_conditions,
			medications=EXCLUDED.medications, allergies=EXCLUDED.allergies,
			updated_at=NOW()`,
		p.ID, p.UserID, p.DateOfBirth, p.Gender, p.HeightCM, p.WeightKG,
		p.KnownConditions, p.Medications, p.Allergies)
	return err
}
