package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/AlexZinkM/share-a-care/internal/common"
	"github.com/AlexZinkM/share-a-care/internal/model"
)

const carePackageColumns = `id, name, description, threshold, eligibility, image, created_at, updated_at`

func scanCarePackage(row rowScanner) (*model.CarePackage, error) {
	var c model.CarePackage
	var threshold int64
	var created, updated string
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &threshold, &c.Eligibility, &c.Image, &created, &updated); err != nil {
		return nil, err
	}
	c.Threshold = common.MicroToCARES(uint64(threshold))
	c.CreatedAt = parseTime(created)
	c.UpdatedAt = parseTime(updated)
	return &c, nil
}

// CreateCarePackage stores a new reward tier
func (s *SQLiteStore) CreateCarePackage(ctx context.Context, in model.CarePackageInput) (*model.CarePackage, error) {
	threshold, err := common.CARESToMicro(in.Threshold)
	if err != nil {
		return nil, fmt.Errorf("invalid threshold: %w", err)
	}

	id := uuid.NewString()
	now := s.timestamp()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO care_packages (id, name, description, threshold, eligibility, image, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, in.Name, in.Description, int64(threshold), in.Eligibility, in.Image, now, now)
	if err != nil {
		return nil, wrap("create care package", err)
	}
	return s.getCarePackage(ctx, id)
}

// UpdateCarePackage replaces the editable fields of a care package
func (s *SQLiteStore) UpdateCarePackage(ctx context.Context, id string, in model.CarePackageInput) (*model.CarePackage, error) {
	threshold, err := common.CARESToMicro(in.Threshold)
	if err != nil {
		return nil, fmt.Errorf("invalid threshold: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE care_packages SET name = ?, description = ?, threshold = ?, eligibility = ?, image = ?, updated_at = ?
		WHERE id = ?
	`, in.Name, in.Description, int64(threshold), in.Eligibility, in.Image, s.timestamp(), id)
	if err != nil {
		return nil, wrap("update care package", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, wrap("update care package", err)
	} else if n == 0 {
		return nil, ErrNotFound
	}
	return s.getCarePackage(ctx, id)
}

// DeleteCarePackage removes a care package
func (s *SQLiteStore) DeleteCarePackage(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM care_packages WHERE id = ?`, id)
	if err != nil {
		return wrap("delete care package", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return wrap("delete care package", err)
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) getCarePackage(ctx context.Context, id string) (*model.CarePackage, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+carePackageColumns+` FROM care_packages WHERE id = ?`, id)
	c, err := scanCarePackage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrap("get care package", err)
	}
	return c, nil
}

// ListCarePackages returns reward tiers ordered by threshold
func (s *SQLiteStore) ListCarePackages(ctx context.Context) ([]model.CarePackage, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+carePackageColumns+` FROM care_packages ORDER BY threshold, rowid`)
	if err != nil {
		return nil, wrap("list care packages", err)
	}
	defer rows.Close()

	pkgs := []model.CarePackage{}
	for rows.Next() {
		c, err := scanCarePackage(rows)
		if err != nil {
			return nil, wrap("scan care package", err)
		}
		pkgs = append(pkgs, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list care packages", err)
	}
	return pkgs, nil
}
