package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/tabgroups/internal/db"
	"github.com/alexanderramin/tabgroups/internal/domain"
)

// nodeColumns is the canonical SELECT column list for nodes.
const nodeColumns = `id, title, parent_id, position, is_folder, locked, created_at, updated_at`

// SQLiteNodeRepo implements NodeRepo using a SQLite database. It accepts
// either a *sql.DB or a *sql.Tx.
type SQLiteNodeRepo struct {
	db db.DBTX
}

// NewSQLiteNodeRepo creates a new SQLiteNodeRepo.
func NewSQLiteNodeRepo(db db.DBTX) *SQLiteNodeRepo {
	return &SQLiteNodeRepo{db: db}
}

func (r *SQLiteNodeRepo) Create(ctx context.Context, n *domain.Node) error {
	query := `INSERT INTO nodes (id, title, parent_id, position, is_folder, locked, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.Title,
		nullableString(n.ParentID),
		n.Position,
		boolToInt(n.IsFolder),
		boolToInt(n.Locked),
		n.CreatedAt.UTC().Format(time.RFC3339),
		n.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting node: %w", err)
	}
	return nil
}

func (r *SQLiteNodeRepo) GetByID(ctx context.Context, id string) (*domain.Node, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes WHERE id = ?`
	n, err := scanNode(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("node %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning node: %w", err)
	}
	return n, nil
}

// List returns every node ordered by parent and position. Order is only a
// convenience; the tree builder sorts on its own.
func (r *SQLiteNodeRepo) List(ctx context.Context) ([]domain.Node, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes ORDER BY parent_id, position, created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing nodes: %w", err)
	}
	defer rows.Close()

	var nodes []domain.Node
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning node row: %w", err)
		}
		nodes = append(nodes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating nodes: %w", err)
	}
	return nodes, nil
}

// UpdatePlacement writes one node's parent and position.
func (r *SQLiteNodeRepo) UpdatePlacement(ctx context.Context, p domain.Placement) error {
	query := `UPDATE nodes SET parent_id = ?, position = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, nullableString(p.ParentID), p.Position, nowUTC(), p.ID)
	if err != nil {
		return fmt.Errorf("updating placement of node %s: %w", p.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating placement of node %s: %w", p.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("node %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

// UpdateLocked pins or unpins a node. Placement is left alone.
func (r *SQLiteNodeRepo) UpdateLocked(ctx context.Context, id string, locked bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE nodes SET locked = ?, updated_at = ? WHERE id = ?`,
		boolToInt(locked), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating lock of node %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating lock of node %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("node %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNode(row rowScanner) (*domain.Node, error) {
	var n domain.Node
	var parentID sql.NullString
	var isFolder, locked int
	var createdAtStr, updatedAtStr string

	if err := row.Scan(&n.ID, &n.Title, &parentID, &n.Position, &isFolder, &locked, &createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}
	n.ParentID = stringPtr(parentID)
	n.IsFolder = intToBool(isFolder)
	n.Locked = intToBool(locked)

	var err error
	if n.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if n.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &n, nil
}
