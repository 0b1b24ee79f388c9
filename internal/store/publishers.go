package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AlexZinkM/share-a-care/internal/address"
	"github.com/AlexZinkM/share-a-care/internal/model"
)

// CreatePublisher stores a publisher wallet. The lower-cased address is unique,
// so a case variant of an existing publisher fails with ErrDuplicate.
func (s *SQLiteStore) CreatePublisher(ctx context.Context, walletAddress, addedBy string) (*model.Publisher, error) {
	p := &model.Publisher{
		ID:            uuid.NewString(),
		WalletAddress: walletAddress,
		AddedBy:       addedBy,
	}
	created := s.timestamp()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO publishers (id, wallet_address, wallet_address_lower, added_by, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, p.ID, walletAddress, address.Normalize(walletAddress), addedBy, created)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, fmt.Errorf("publisher %s: %w", walletAddress, ErrDuplicate)
		}
		return nil, wrap("create publisher", err)
	}

	p.CreatedAt = parseTime(created)
	s.logger.Debug("created publisher", "publisher", walletAddress)
	return p, nil
}

// DeletePublisher removes the publisher matching walletAddress case-insensitively
func (s *SQLiteStore) DeletePublisher(ctx context.Context, walletAddress string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM publishers WHERE wallet_address_lower = ?`, address.Normalize(walletAddress))
	if err != nil {
		return wrap("delete publisher", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrap("delete publisher", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPublishers returns publishers in insertion order
func (s *SQLiteStore) ListPublishers(ctx context.Context) ([]model.Publisher, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, wallet_address, added_by, created_at
		FROM publishers
		ORDER BY created_at, rowid
	`)
	if err != nil {
		return nil, wrap("list publishers", err)
	}
	defer rows.Close()

	pubs := []model.Publisher{}
	for rows.Next() {
		var p model.Publisher
		var created string
		if err := rows.Scan(&p.ID, &p.WalletAddress, &p.AddedBy, &created); err != nil {
			return nil, wrap("scan publisher", err)
		}
		p.CreatedAt = parseTime(created)
		pubs = append(pubs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list publishers", err)
	}
	return pubs, nil
}

// ListPublisherAddresses returns only the wallet addresses of all publishers
func (s *SQLiteStore) ListPublisherAddresses(ctx context.Context) ([]string, error) {
	pubs, err := s.ListPublishers(ctx)
	if err != nil {
		return nil, err
	}
	addrs := make([]string, 0, len(pubs))
	for _, p := range pubs {
		addrs = append(addrs, p.WalletAddress)
	}
	return addrs, nil
}
