package repository

import (
	"context"
	"database/sql"

	"checklist_api/internal/models"
)

type Authorization interface {
	Create(name, email, passwordHash string) (int, error)
	GetByEmail(email string) (*models.User, error)
}

// Checklists persists checklists. Multi-row writes (create with items,
// delete with items) run inside a single transaction.
type Checklists interface {
	Create(ctx context.Context, cl models.Checklist, items []models.Item) (models.Checklist, error)
	GetByID(ctx context.Context, id int) (*models.Checklist, error)
	ListByUser(ctx context.Context, userID int) ([]models.Checklist, error)
	Delete(ctx context.Context, id int) error
}

// Items persists todo items. GetByID also reports the owning user id of the
// item's parent checklist so callers can authorize without a second query.
type Items interface {
	Create(ctx context.Context, it models.Item) (models.Item, error)
	GetByID(ctx context.Context, id int) (*models.Item, int, error)
	ListByChecklist(ctx context.Context, checklistID int) ([]models.Item, error)
	Update(ctx context.Context, it models.Item) error
	Delete(ctx context.Context, id int) error
}

type Repository struct {
	Auth       Authorization
	Checklists Checklists
	Items      Items
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:       NewUserRepository(db),
		Checklists: NewChecklistSQLite(db),
		Items:      NewItemSQLite(db),
	}
}
