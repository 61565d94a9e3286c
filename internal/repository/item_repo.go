package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"checklist_api/internal/models"
)

type ItemSQLite struct {
	db *sql.DB
}

func NewItemSQLite(db *sql.DB) *ItemSQLite {
	return &ItemSQLite{db: db}
}

var _ Items = (*ItemSQLite)(nil)

const (
	insertItemSQL = `INSERT INTO items (name, completed, checklist_id) VALUES (?, ?, ?)`

	// join brings back the parent checklist's owner for authorization
	selectItemWithOwnerSQL = `
		SELECT i.id, i.name, i.completed, i.checklist_id, c.user_id
		FROM items i
		JOIN checklists c ON c.id = i.checklist_id
		WHERE i.id = ?
	`

	selectItemsByChecklistSQL = `
		SELECT id, name, completed, checklist_id
		FROM items WHERE checklist_id = ?
		ORDER BY id
	`

	updateItemSQL = `UPDATE items SET name = ?, completed = ? WHERE id = ?`
	deleteItemSQL = `DELETE FROM items WHERE id = ?`
)

// Create inserts a new item and returns it with its generated ID.
func (r *ItemSQLite) Create(ctx context.Context, it models.Item) (models.Item, error) {
	res, err := r.db.ExecContext(ctx, insertItemSQL, it.Name, it.Completed, it.ChecklistID)
	if err != nil {
		return models.Item{}, fmt.Errorf("insert item %q: %w", it.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Item{}, fmt.Errorf("get last insert id for item %q: %w", it.Name, err)
	}
	it.ID = int(lastID)
	return it, nil
}

// GetByID fetches an item along with the user id owning its parent checklist.
// Returns (nil, 0, nil) if the item does not exist.
func (r *ItemSQLite) GetByID(ctx context.Context, id int) (*models.Item, int, error) {
	var it models.Item
	var ownerID int
	err := r.db.QueryRowContext(ctx, selectItemWithOwnerSQL, id).
		Scan(&it.ID, &it.Name, &it.Completed, &it.ChecklistID, &ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("select item %d: %w", id, err)
	}
	return &it, ownerID, nil
}

// ListByChecklist returns all items of a checklist in insertion order.
func (r *ItemSQLite) ListByChecklist(ctx context.Context, checklistID int) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, selectItemsByChecklistSQL, checklistID)
	if err != nil {
		return nil, fmt.Errorf("select items of checklist %d: %w", checklistID, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	items := make([]models.Item, 0)
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Completed, &it.ChecklistID); err != nil {
			return nil, fmt.Errorf("scan item row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item rows: %w", err)
	}
	return items, nil
}

// Update persists the item's name and completed flag.
func (r *ItemSQLite) Update(ctx context.Context, it models.Item) error {
	if _, err := r.db.ExecContext(ctx, updateItemSQL, it.Name, it.Completed, it.ID); err != nil {
		return fmt.Errorf("update item %d: %w", it.ID, err)
	}
	return nil
}

// Delete removes a single item.
func (r *ItemSQLite) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteItemSQL, id); err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	return nil
}
