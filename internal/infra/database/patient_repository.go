package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sunriseclinic/recall-api/internal/entity"
	"github.com/sunriseclinic/recall-api/internal/usecase"
)

type PatientRepository struct {
	DB *sql.DB
}

func NewPatientRepository(db *sql.DB) *PatientRepository {
	return &PatientRepository{DB: db}
}

// List returns one page ordered by id plus the total match count.
// page is assumed >= 1 and limit in [1,100]; the use case clamps both.
func (r *PatientRepository) List(ctx context.Context, filter usecase.PatientFilter, page, limit int) ([]entity.Patient, int, error) {
	var conditions []string
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR phone ILIKE $%d)", len(args), len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM patients" + whereClause
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count patients: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, phone, missed_date, status, created_at, updated_at
		FROM patients%s
		ORDER BY id ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)

	args = append(args, limit, (page-1)*limit)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	patients := []entity.Patient{}
	for rows.Next() {
		var p entity.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.MissedDate, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return patients, total, nil
}

// SetContacted applies the transition and the timestamp refresh in one
// statement, so two concurrent calls on the same id cannot interleave.
// A rebooked patient is never downgraded.
func (r *PatientRepository) SetContacted(ctx context.Context, id int) (*entity.ContactedPatient, error) {
	query := `
		UPDATE patients
		SET status = 'contacted', updated_at = NOW()
		WHERE id = $1 AND status <> 'rebooked'
		RETURNING id, name, phone, status
	`

	var p entity.ContactedPatient
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Phone, &p.Status)
	if errors.Is(err, sql.ErrNoRows) {
		// Zero rows means missing or rebooked; probe to tell them apart.
		var exists bool
		probe := `SELECT EXISTS (SELECT 1 FROM patients WHERE id = $1)`
		if probeErr := r.DB.QueryRowContext(ctx, probe, id).Scan(&exists); probeErr != nil {
			return nil, fmt.Errorf("failed to check patient %d: %w", id, probeErr)
		}
		if exists {
			return nil, entity.ErrPatientRebooked
		}
		return nil, entity.ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark patient %d contacted: %w", id, err)
	}

	return &p, nil
}

// Create inserts a new pending patient. A duplicate phone is reported as
// entity.ErrPhoneAlreadyExists and leaves the existing record untouched.
func (r *PatientRepository) Create(ctx context.Context, p *entity.Patient) error {
	query := `
		INSERT INTO patients (name, phone, missed_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, query,
		p.Name,
		p.Phone,
		p.MissedDate,
		string(p.Status),
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrPhoneAlreadyExists
		}
		return fmt.Errorf("failed to create patient: %w", err)
	}

	return nil
}

// DeleteAll wipes the table. Seeder only.
func (r *PatientRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM patients`); err != nil {
		return fmt.Errorf("failed to clear patients: %w", err)
	}
	return nil
}
