package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"checklist_api/internal/models"
)

type ChecklistSQLite struct {
	db *sql.DB
}

func NewChecklistSQLite(db *sql.DB) *ChecklistSQLite {
	return &ChecklistSQLite{db: db}
}

var _ Checklists = (*ChecklistSQLite)(nil)

const (
	insertChecklistSQL = `INSERT INTO checklists (title, description, user_id, created_at) VALUES (?, ?, ?, ?)`

	selectChecklistByIDSQL = `
		SELECT id, title, description, user_id, created_at
		FROM checklists WHERE id = ?
	`

	selectChecklistsByUserSQL = `
		SELECT id, title, description, user_id, created_at
		FROM checklists WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`

	deleteItemsByChecklistSQL = `DELETE FROM items WHERE checklist_id = ?`
	deleteChecklistSQL        = `DELETE FROM checklists WHERE id = ?`
)

// Create inserts a checklist together with its initial items in one
// transaction; either everything is persisted or nothing is.
func (r *ChecklistSQLite) Create(ctx context.Context, cl models.Checklist, items []models.Item) (models.Checklist, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Checklist{}, fmt.Errorf("begin create checklist: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if cl.CreatedAt.IsZero() {
		cl.CreatedAt = time.Now().UTC()
	} else {
		cl.CreatedAt = cl.CreatedAt.UTC()
	}

	res, err := tx.ExecContext(ctx, insertChecklistSQL, cl.Title, cl.Description, cl.UserID, cl.CreatedAt)
	if err != nil {
		return models.Checklist{}, fmt.Errorf("insert checklist %q: %w", cl.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Checklist{}, fmt.Errorf("get last insert id for checklist %q: %w", cl.Title, err)
	}
	cl.ID = int(lastID)

	cl.Items = make([]models.Item, 0, len(items))
	for _, it := range items {
		it.ChecklistID = cl.ID
		res, err := tx.ExecContext(ctx, insertItemSQL, it.Name, it.Completed, it.ChecklistID)
		if err != nil {
			return models.Checklist{}, fmt.Errorf("insert item %q: %w", it.Name, err)
		}
		itemID, err := res.LastInsertId()
		if err != nil {
			return models.Checklist{}, fmt.Errorf("get last insert id for item %q: %w", it.Name, err)
		}
		it.ID = int(itemID)
		cl.Items = append(cl.Items, it)
	}

	if err := tx.Commit(); err != nil {
		return models.Checklist{}, fmt.Errorf("commit create checklist: %w", err)
	}
	return cl, nil
}

// GetByID fetches a checklist without its items. Returns (nil, nil) if not found.
func (r *ChecklistSQLite) GetByID(ctx context.Context, id int) (*models.Checklist, error) {
	row := r.db.QueryRowContext(ctx, selectChecklistByIDSQL, id)
	cl, err := scanChecklist(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select checklist %d: %w", id, err)
	}
	return cl, nil
}

// ListByUser returns the user's checklists, newest-created first, without items.
func (r *ChecklistSQLite) ListByUser(ctx context.Context, userID int) ([]models.Checklist, error) {
	rows, err := r.db.QueryContext(ctx, selectChecklistsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select checklists for user %d: %w", userID, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	checklists := make([]models.Checklist, 0)
	for rows.Next() {
		cl, err := scanChecklist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan checklist row: %w", err)
		}
		checklists = append(checklists, *cl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checklist rows: %w", err)
	}
	return checklists, nil
}

// Delete removes a checklist and all of its items atomically: items first,
// then the checklist, with full rollback if either statement fails.
func (r *ChecklistSQLite) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete checklist %d: %w", id, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, deleteItemsByChecklistSQL, id); err != nil {
		return fmt.Errorf("delete items of checklist %d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, deleteChecklistSQL, id); err != nil {
		return fmt.Errorf("delete checklist %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete checklist %d: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChecklist(row rowScanner) (*models.Checklist, error) {
	var cl models.Checklist
	var description sql.NullString
	if err := row.Scan(&cl.ID, &cl.Title, &description, &cl.UserID, &cl.CreatedAt); err != nil {
		return nil, err
	}
	cl.Description = description.String
	cl.CreatedAt = cl.CreatedAt.UTC()
	cl.Items = make([]models.Item, 0)
	return &cl, nil
}
