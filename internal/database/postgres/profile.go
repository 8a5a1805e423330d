package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/repository"
)

const (
	insertProfileSQL = `
		INSERT INTO profiles (profile_id, balance, current_energy, is_sleeping, sleep_started_at, regen_carry, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	`
	selectProfileSQL = `
		SELECT balance, current_energy, is_sleeping, sleep_started_at, regen_carry, created_at, updated_at
		FROM profiles
		WHERE profile_id = $1
	`
	updateProfileSQL = `
		UPDATE profiles
		SET balance = $2, current_energy = $3, is_sleeping = $4, sleep_started_at = $5, regen_carry = $6, updated_at = NOW()
		WHERE profile_id = $1
		RETURNING updated_at
	`
	selectSlotsSQL = `
		SELECT slot_index, instance_id, encoding
		FROM profile_slots
		WHERE profile_id = $1
		ORDER BY slot_index
	`
	upsertSlotSQL = `
		INSERT INTO profile_slots (profile_id, slot_index, instance_id, encoding)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (profile_id, slot_index) DO UPDATE
		SET instance_id = EXCLUDED.instance_id, encoding = EXCLUDED.encoding
	`
	trimSlotsSQL = `
		DELETE FROM profile_slots WHERE profile_id = $1 AND slot_index >= $2
	`
	selectSleepingSQL = `
		SELECT profile_id::text FROM profiles WHERE is_sleeping ORDER BY profile_id
	`
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// ProfileRepository implements repository.Profile for PostgreSQL
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ repository.Profile = (*ProfileRepository)(nil)

// CreateProfile inserts the profile row and all of its slots
func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	id, err := parseProfileUUID(profile.ID)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTxFmt, err)
	}
	defer SafeRollback(ctx, tx)

	e := profile.Energy
	_, err = tx.Exec(ctx, insertProfileSQL, id, profile.Balance, e.CurrentEnergy, e.IsSleeping, e.SleepStartedAt, e.RegenCarry, profile.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: profile %s already exists", domain.ErrInvalidInput, profile.ID)
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	if err := writeSlots(ctx, tx, id, profile.Slots); err != nil {
		return err
	}
	profile.UpdatedAt = profile.CreatedAt
	return tx.Commit(ctx)
}

// GetProfile loads a profile with its slots
func (r *ProfileRepository) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	return loadProfile(ctx, r.db, profileID, false)
}

// ListSleepingProfiles returns the ids of sleeping profiles
func (r *ProfileRepository) ListSleepingProfiles(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, selectSleepingSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list sleeping profiles: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan sleeping profiles: %w", err)
	}
	return ids, nil
}

// BeginTx starts a profile transaction
func (r *ProfileRepository) BeginTx(ctx context.Context) (repository.ProfileTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFmt, err)
	}
	return &profileTx{tx: tx}, nil
}

type profileTx struct {
	tx pgx.Tx
}

func (t *profileTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *profileTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetProfileForUpdate locks the profile row until the transaction ends
func (t *profileTx) GetProfileForUpdate(ctx context.Context, profileID string) (*domain.Profile, error) {
	return loadProfile(ctx, t.tx, profileID, true)
}

// SaveProfile overwrites the profile row and its slots
func (t *profileTx) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	id, err := parseProfileUUID(profile.ID)
	if err != nil {
		return err
	}

	e := profile.Energy
	err = t.tx.QueryRow(ctx, updateProfileSQL, id, profile.Balance, e.CurrentEnergy, e.IsSleeping, e.SleepStartedAt, e.RegenCarry).
		Scan(&profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profile.ID)
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return writeSlots(ctx, t.tx, id, profile.Slots)
}

func loadProfile(ctx context.Context, q querier, profileID string, forUpdate bool) (*domain.Profile, error) {
	id, err := parseProfileUUID(profileID)
	if err != nil {
		return nil, err
	}

	query := selectProfileSQL
	if forUpdate {
		query += " FOR UPDATE"
	}

	p := &domain.Profile{ID: profileID}
	err = q.QueryRow(ctx, query, id).Scan(
		&p.Balance,
		&p.Energy.CurrentEnergy,
		&p.Energy.IsSleeping,
		&p.Energy.SleepStartedAt,
		&p.Energy.RegenCarry,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	rows, err := q.Query(ctx, selectSlotsSQL, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			index      int
			instanceID pgtype.UUID
			encoding   string
		)
		if err := rows.Scan(&index, &instanceID, &encoding); err != nil {
			return nil, fmt.Errorf("failed to scan profile slot: %w", err)
		}
		for len(p.Slots) <= index {
			p.Slots = append(p.Slots, domain.SlotRecord{Encoding: domain.EmptySlot})
		}
		rec := domain.SlotRecord{Encoding: encoding}
		if instanceID.Valid {
			rec.InstanceID = uuid.UUID(instanceID.Bytes).String()
		}
		p.Slots[index] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profile slots: %w", err)
	}
	return p, nil
}

// writeSlots upserts every slot and drops any beyond len(slots) in one batch
func writeSlots(ctx context.Context, q querier, profileID uuid.UUID, slots []domain.SlotRecord) error {
	batch := &pgx.Batch{}
	for i, s := range slots {
		instanceID, err := nullableUUID(s.InstanceID)
		if err != nil {
			return err
		}
		batch.Queue(upsertSlotSQL, profileID, i, instanceID, s.Encoding)
	}
	batch.Queue(trimSlotsSQL, profileID, len(slots))

	if err := q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to write profile slots: %w", err)
	}
	return nil
}
