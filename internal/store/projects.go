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

const projectColumns = `id, title, description, image, funding_goal, current_amount, supporters_count, top_donor, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*model.Project, error) {
	var p model.Project
	var goal, current int64
	var created, updated string
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &goal, &current,
		&p.SupportersCount, &p.TopDonor, &created, &updated); err != nil {
		return nil, err
	}
	p.FundingGoal = common.MicroToCARES(uint64(goal))
	p.CurrentAmount = common.MicroToCARES(uint64(current))
	p.CreatedAt = parseTime(created)
	p.UpdatedAt = parseTime(updated)
	return &p, nil
}

// CreateProject stores a new project. Raised amount and supporters start at zero.
func (s *SQLiteStore) CreateProject(ctx context.Context, in model.ProjectInput) (*model.Project, error) {
	goal, err := common.CARESToMicro(in.FundingGoal)
	if err != nil {
		return nil, fmt.Errorf("invalid funding goal: %w", err)
	}

	id := uuid.NewString()
	now := s.timestamp()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO projects (id, title, description, image, funding_goal, current_amount, supporters_count, top_donor, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 0, 0, '', ?, ?)
	`, id, in.Title, in.Description, in.Image, int64(goal), now, now)
	if err != nil {
		return nil, wrap("create project", err)
	}
	return s.GetProject(ctx, id)
}

// UpdateProject replaces the editable fields of a project
func (s *SQLiteStore) UpdateProject(ctx context.Context, id string, in model.ProjectInput) (*model.Project, error) {
	goal, err := common.CARESToMicro(in.FundingGoal)
	if err != nil {
		return nil, fmt.Errorf("invalid funding goal: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE projects SET title = ?, description = ?, image = ?, funding_goal = ?, updated_at = ?
		WHERE id = ?
	`, in.Title, in.Description, in.Image, int64(goal), s.timestamp(), id)
	if err != nil {
		return nil, wrap("update project", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, wrap("update project", err)
	} else if n == 0 {
		return nil, ErrNotFound
	}
	return s.GetProject(ctx, id)
}

// DeleteProject removes a project and its donations
func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return wrap("delete project", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return wrap("delete project", err)
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetProject returns a single project
func (s *SQLiteStore) GetProject(ctx context.Context, id string) (*model.Project, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrap("get project", err)
	}
	return p, nil
}

// ListProjects returns all projects, newest first
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, wrap("list projects", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, wrap("scan project", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list projects", err)
	}
	return projects, nil
}
