package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/AlexZinkM/share-a-care/internal/address"
	"github.com/AlexZinkM/share-a-care/internal/common"
	"github.com/AlexZinkM/share-a-care/internal/model"
)

const defaultTopDonors = 5

// RecordDonation stores a donation and refreshes the project's raised amount,
// supporter count and top donor in the same transaction. It records bookkeeping
// only; no token transfer is made.
func (s *SQLiteStore) RecordDonation(ctx context.Context, projectID, donor, amount string) (*model.Donation, error) {
	if err := address.Validate(donor); err != nil {
		return nil, err
	}
	micro, err := common.CARESToMicro(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	if micro == 0 {
		return nil, fmt.Errorf("invalid amount: must be greater than zero")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrap("begin donation", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE id = ?`, projectID).Scan(&exists); err != nil {
		return nil, wrap("record donation", err)
	}
	if exists == 0 {
		return nil, ErrNotFound
	}

	d := &model.Donation{
		ID:           uuid.NewString(),
		ProjectID:    projectID,
		DonorAddress: donor,
		Amount:       common.MicroToCARES(micro),
	}
	now := s.timestamp()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO donations (id, project_id, donor_address, donor_lower, amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, d.ID, projectID, donor, address.Normalize(donor), int64(micro), now); err != nil {
		return nil, wrap("record donation", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE projects SET
			current_amount = current_amount + ?,
			supporters_count = (SELECT COUNT(DISTINCT donor_lower) FROM donations WHERE project_id = ?),
			top_donor = (
				SELECT MIN(donor_address) FROM donations WHERE project_id = ?
				GROUP BY donor_lower ORDER BY SUM(amount) DESC, MIN(created_at) LIMIT 1
			),
			updated_at = ?
		WHERE id = ?
	`, int64(micro), projectID, projectID, now, projectID); err != nil {
		return nil, wrap("update project totals", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, wrap("commit donation", err)
	}

	d.CreatedAt = parseTime(now)
	s.logger.Debug("recorded donation", "project_id", projectID, "donor", donor, "amount", d.Amount)
	return d, nil
}

// ListUserDonations returns donations made by addr (case-insensitive), newest first
func (s *SQLiteStore) ListUserDonations(ctx context.Context, addr string) ([]model.Donation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, donor_address, amount, created_at
		FROM donations WHERE donor_lower = ?
		ORDER BY created_at DESC, rowid DESC
	`, address.Normalize(addr))
	if err != nil {
		return nil, wrap("list donations", err)
	}
	defer rows.Close()

	donations := []model.Donation{}
	for rows.Next() {
		var d model.Donation
		var amount int64
		var created string
		if err := rows.Scan(&d.ID, &d.ProjectID, &d.DonorAddress, &amount, &created); err != nil {
			return nil, wrap("scan donation", err)
		}
		d.Amount = common.MicroToCARES(uint64(amount))
		d.CreatedAt = parseTime(created)
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list donations", err)
	}
	return donations, nil
}

// ListTopDonors aggregates donations per donor and returns the largest totals.
// A non-positive limit uses the dashboard default of 5.
func (s *SQLiteStore) ListTopDonors(ctx context.Context, limit int) ([]model.TopDonor, error) {
	if limit <= 0 {
		limit = defaultTopDonors
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT MIN(donor_address), SUM(amount) AS total, GROUP_CONCAT(DISTINCT project_id)
		FROM donations
		GROUP BY donor_lower
		ORDER BY total DESC, donor_lower
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, wrap("list top donors", err)
	}
	defer rows.Close()

	donors := []model.TopDonor{}
	for rows.Next() {
		var d model.TopDonor
		var total int64
		var projects string
		if err := rows.Scan(&d.Address, &total, &projects); err != nil {
			return nil, wrap("scan top donor", err)
		}
		d.TotalDonated = common.MicroToCARES(uint64(total))
		d.ProjectsSupported = strings.Split(projects, ",")
		donors = append(donors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list top donors", err)
	}
	return donors, nil
}
