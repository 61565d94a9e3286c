package service

import (
	"context"
	"time"

	"checklist_api/internal/models"
	"checklist_api/internal/repository"
)

type Authorization interface {
	Register(name, email, password string) (models.User, error)
	Login(email, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Checklists exposes checklist CRUD; every operation authorizes against the
// acting user before touching the store.
type Checklists interface {
	Create(ctx context.Context, userID int, p ChecklistParams) (models.Checklist, error)
	List(ctx context.Context, userID int) ([]models.Checklist, error)
	Get(ctx context.Context, userID, checklistID int) (models.Checklist, error)
	Delete(ctx context.Context, userID, checklistID int) error
}

// Items exposes todo item CRUD under an owned checklist.
type Items interface {
	Create(ctx context.Context, userID, checklistID int, p ItemParams) (models.Item, error)
	List(ctx context.Context, userID, checklistID int) ([]models.Item, error)
	Update(ctx context.Context, userID, itemID int, p ItemUpdateParams) (models.Item, error)
	ToggleStatus(ctx context.Context, userID, itemID int) (models.Item, error)
	Delete(ctx context.Context, userID, itemID int) error
}

// ChecklistParams carries a validated create-checklist request.
type ChecklistParams struct {
	Title       string
	Description string
	Items       []ItemParams
}

// ItemParams carries a validated create-item request.
type ItemParams struct {
	Name      string
	Completed bool
}

// ItemUpdateParams carries a partial item update; nil fields stay unchanged.
type ItemUpdateParams struct {
	Name      *string
	Completed *bool
}

type Service struct {
	Authorization
	Checklists
	Items
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, signingKey string, tokenTTL time.Duration) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, signingKey, tokenTTL),
		Checklists:    NewChecklistService(repos.Checklists, repos.Items),
		Items:         NewItemService(repos.Checklists, repos.Items),
	}
}
