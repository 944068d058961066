package repo

import (
	"context"
	"database/sql"
)

// Preferences are the per-user defaults for the chart inputs: the values the
// three manual spin boxes start at.
type Preferences struct {
	AltitudeM float64 `json:"altitude_m"`
	DryBulbC  float64 `json:"dry_bulb_c"`
	RelHumPct float64 `json:"rel_hum_pct"`
}

// DefaultPreferences mirrors the built-in spin-box defaults.
var DefaultPreferences = Preferences{AltitudeM: 0, DryBulbC: 25, RelHumPct: 50}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetPreferences(ctx context.Context, userID int) (Preferences, error)
	SavePreferences(ctx context.Context, userID int, p Preferences) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

// GetPreferences falls back to the built-in defaults for users who never
// saved any.
func (r *PostgresUserRepository) GetPreferences(ctx context.Context, userID int) (Preferences, error) {
	var p Preferences
	query := "SELECT altitude_m, dry_bulb_c, rel_hum_pct FROM chart_preferences WHERE user_id=$1"
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.AltitudeM, &p.DryBulbC, &p.RelHumPct)
	if err != nil {
		if err == sql.ErrNoRows {
			return DefaultPreferences, nil
		}
		return Preferences{}, err
	}
	return p, nil
}

func (r *PostgresUserRepository) SavePreferences(ctx context.Context, userID int, p Preferences) error {
	query := `INSERT INTO chart_preferences (user_id, altitude_m, dry_bulb_c, rel_hum_pct)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET altitude_m=$2, dry_bulb_c=$3, rel_hum_pct=$4`
	_, err := r.db.ExecContext(ctx, query, userID, p.AltitudeM, p.DryBulbC, p.RelHumPct)
	return err
}
