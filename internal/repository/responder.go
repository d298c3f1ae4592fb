package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rescuesim/responder-service/internal/models"
	"github.com/rescuesim/responder-service/internal/service"
)

type ResponderRepository struct {
	db *pgxpool.Pool
}

func NewResponderRepository(db *pgxpool.Pool) service.ResponderRepository {
	return &ResponderRepository{
		db: db,
	}
}

const responderColumns = `
	responder_id,
	responder_name,
	responder_phone_number,
	responder_current_gps_lat,
	responder_current_gps_long,
	boat_capacity,
	has_medical_kit,
	available,
	person,
	enrolled,
	version`

// Create inserts a new responder row. The database assigns the id and
// the initial version.
func (r *ResponderRepository) Create(ctx context.Context, responder *models.Responder) error {
	query := `
		INSERT INTO responders (
			responder_name,
			responder_phone_number,
			responder_current_gps_lat,
			responder_current_gps_long,
			boat_capacity,
			has_medical_kit,
			available,
			person,
			enrolled
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING responder_id, version;
	`
	err := r.db.QueryRow(ctx, query,
		responder.Name,
		responder.PhoneNumber,
		responder.Latitude,
		responder.Longitude,
		responder.BoatCapacity,
		responder.MedicalKit,
		responder.Available,
		responder.Person,
		responder.Enrolled,
	).Scan(&responder.ID, &responder.Version)
	if err != nil {
		return fmt.Errorf("failed to create responder: %w", err)
	}
	return nil
}

// FindByID returns the responder with the given id, or nil when no
// such row exists.
func (r *ResponderRepository) FindByID(ctx context.Context, id int64) (*models.Responder, error) {
	query := `SELECT ` + responderColumns + ` FROM responders WHERE responder_id = $1;`

	responder, err := scanResponder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get responder by id: %w", err)
	}
	return responder, nil
}

// FindByName returns the responder with the given name, nil when no
// row matches. More than one match surfaces as ErrMultipleMatches
// since names are expected to be unique in the simulation.
func (r *ResponderRepository) FindByName(ctx context.Context, name string) (*models.Responder, error) {
	query := `SELECT ` + responderColumns + ` FROM responders WHERE responder_name = $1;`

	rows, err := r.db.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get responder by name: %w", err)
	}
	defer rows.Close()

	var matches []*models.Responder
	for rows.Next() {
		responder, err := scanResponder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan responder row: %w", err)
		}
		matches = append(matches, responder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating responders by name: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("found %d responders with name '%s': %w", len(matches), name, service.ErrMultipleMatches)
	}
}

// ConditionalUpdate writes the full merged state of a responder only
// if the row still carries expectedVersion, bumping the version in the
// same statement. The version check and the write are a single UPDATE,
// so no other writer can observe a half-applied record. A zero-row
// result is disambiguated into a lost race or a deleted row.
func (r *ResponderRepository) ConditionalUpdate(ctx context.Context, responder *models.Responder, expectedVersion int64) error {
	query := `
		UPDATE responders SET
			responder_name = $2,
			responder_phone_number = $3,
			responder_current_gps_lat = $4,
			responder_current_gps_long = $5,
			boat_capacity = $6,
			has_medical_kit = $7,
			available = $8,
			person = $9,
			enrolled = $10,
			version = version + 1
		WHERE responder_id = $1 AND version = $11;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		responder.ID,
		responder.Name,
		responder.PhoneNumber,
		responder.Latitude,
		responder.Longitude,
		responder.BoatCapacity,
		responder.MedicalKit,
		responder.Available,
		responder.Person,
		responder.Enrolled,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update responder: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		var exists bool
		err := r.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM responders WHERE responder_id = $1);`,
			responder.ID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check responder existence after conflict: %w", err)
		}
		if !exists {
			return fmt.Errorf("responder %d: %w", responder.ID, service.ErrResponderNotFound)
		}
		return fmt.Errorf("responder %d expected version %d: %w", responder.ID, expectedVersion, service.ErrVersionConflict)
	}

	responder.Version = expectedVersion + 1
	return nil
}

// AllResponders lists responders ordered by id. A non-positive limit
// returns the full set.
func (r *ResponderRepository) AllResponders(ctx context.Context, limit, offset int) ([]*models.Responder, error) {
	query := `SELECT ` + responderColumns + ` FROM responders ORDER BY responder_id;`
	return r.listResponders(ctx, query, limit, offset)
}

// AvailableResponders lists enrolled responders that are not on a
// mission, person responders first so human participants get assigned
// before simulated units.
func (r *ResponderRepository) AvailableResponders(ctx context.Context, limit, offset int) ([]*models.Responder, error) {
	query := `SELECT ` + responderColumns + ` FROM responders
		WHERE available = true AND enrolled = true
		ORDER BY person DESC NULLS LAST, responder_id ASC;`
	return r.listResponders(ctx, query, limit, offset)
}

// PersonResponders lists human responders.
func (r *ResponderRepository) PersonResponders(ctx context.Context, limit, offset int) ([]*models.Responder, error) {
	query := `SELECT ` + responderColumns + ` FROM responders
		WHERE person = true ORDER BY responder_id;`
	return r.listResponders(ctx, query, limit, offset)
}

func (r *ResponderRepository) listResponders(ctx context.Context, query string, limit, offset int) ([]*models.Responder, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 && offset >= 0 {
		query = query[:len(query)-1] + ` LIMIT $1 OFFSET $2;`
		rows, err = r.db.Query(ctx, query, limit, offset)
	} else {
		rows, err = r.db.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list responders: %w", err)
	}
	defer rows.Close()

	responders := make([]*models.Responder, 0)
	for rows.Next() {
		responder, err := scanResponder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan responder row: %w", err)
		}
		responders = append(responders, responder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating responders: %w", err)
	}
	return responders, nil
}

// NonPersonResponderIDs returns the ids of all simulated responders.
func (r *ResponderRepository) NonPersonResponderIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT responder_id FROM responders WHERE person = false;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list non-person responders: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan responder id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating responder ids: %w", err)
	}
	return ids, nil
}

// ActiveResponderCount counts enrolled responders currently on a
// mission.
func (r *ResponderRepository) ActiveResponderCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(responder_id) FROM responders WHERE enrolled = true AND available = false;`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active responders: %w", err)
	}
	return count, nil
}

// EnrolledResponderCount counts the enrolled pool.
func (r *ResponderRepository) EnrolledResponderCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(responder_id) FROM responders WHERE enrolled = true;`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count enrolled responders: %w", err)
	}
	return count, nil
}

// Reset returns every responder to the initial pool state. Person
// responders additionally lose their last known position. Both updates
// run in one transaction so a concurrent reader never sees a half
// reset pool.
func (r *ResponderRepository) Reset(ctx context.Context) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE responders SET available = true, enrolled = false, version = version + 1 WHERE person = false;`,
		); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`UPDATE responders SET available = true, enrolled = false,
				responder_current_gps_lat = NULL, responder_current_gps_long = NULL,
				version = version + 1
			WHERE person = true;`,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to reset responders: %w", err)
	}
	return nil
}

// Clear deletes simulated responders and resets person responders.
func (r *ResponderRepository) Clear(ctx context.Context) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM responders WHERE person = false;`); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`UPDATE responders SET available = true, enrolled = false,
				responder_current_gps_lat = NULL, responder_current_gps_long = NULL,
				version = version + 1
			WHERE person = true;`,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to clear responders: %w", err)
	}
	return nil
}

// DeleteAll removes every responder.
func (r *ResponderRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM responders;`); err != nil {
		return fmt.Errorf("failed to delete responders: %w", err)
	}
	return nil
}

func scanResponder(row pgx.Row) (*models.Responder, error) {
	responder := &models.Responder{}
	err := row.Scan(
		&responder.ID,
		&responder.Name,
		&responder.PhoneNumber,
		&responder.Latitude,
		&responder.Longitude,
		&responder.BoatCapacity,
		&responder.MedicalKit,
		&responder.Available,
		&responder.Person,
		&responder.Enrolled,
		&responder.Version,
	)
	if err != nil {
		return nil, err
	}
	return responder, nil
}
