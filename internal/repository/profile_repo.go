package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository mantiene el perfil mínimo del dueño de los diagnósticos.
// Upsert idempotente: se asegura la fila antes de insertar una corrida.
type ProfileRepository interface {
	EnsureProfile(ctx context.Context, ownerID string) error
}

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) EnsureProfile(ctx context.Context, ownerID string) error {
	const query = `
		INSERT INTO profiles (id, created_at)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, ownerID, time.Now().UTC())
	return err
}
