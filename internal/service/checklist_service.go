package service

import (
	"context"
	"fmt"

	"checklist_api/internal/models"
	"checklist_api/internal/repository"
)

// ChecklistService implements checklist CRUD with ownership checks.
type ChecklistService struct {
	checklists repository.Checklists
	items      repository.Items
}

func NewChecklistService(checklists repository.Checklists, items repository.Items) *ChecklistService {
	return &ChecklistService{checklists: checklists, items: items}
}

var _ Checklists = (*ChecklistService)(nil)

// resolveOwnedChecklist is the single ownership gate for checklist-addressed
// operations: absent → ErrChecklistNotFound, wrong owner → ErrNotOwner.
func resolveOwnedChecklist(ctx context.Context, repo repository.Checklists, userID, checklistID int) (*models.Checklist, error) {
	cl, err := repo.GetByID(ctx, checklistID)
	if err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, ErrChecklistNotFound
	}
	if cl.UserID != userID {
		return nil, ErrNotOwner
	}
	return cl, nil
}

// Create persists a checklist and its initial items; items default to
// completed=false unless the request says otherwise.
func (s *ChecklistService) Create(ctx context.Context, userID int, p ChecklistParams) (models.Checklist, error) {
	items := make([]models.Item, 0, len(p.Items))
	for _, ip := range p.Items {
		items = append(items, models.Item{Name: ip.Name, Completed: ip.Completed})
	}

	cl := models.Checklist{
		Title:       p.Title,
		Description: p.Description,
		UserID:      userID,
	}
	created, err := s.checklists.Create(ctx, cl, items)
	if err != nil {
		return models.Checklist{}, fmt.Errorf("create checklist: %w", err)
	}
	return created, nil
}

// List returns all of the user's checklists, newest first, with their items.
func (s *ChecklistService) List(ctx context.Context, userID int) ([]models.Checklist, error) {
	checklists, err := s.checklists.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range checklists {
		items, err := s.items.ListByChecklist(ctx, checklists[i].ID)
		if err != nil {
			return nil, err
		}
		checklists[i].Items = items
	}
	return checklists, nil
}

// Get returns one owned checklist with its items.
func (s *ChecklistService) Get(ctx context.Context, userID, checklistID int) (models.Checklist, error) {
	cl, err := resolveOwnedChecklist(ctx, s.checklists, userID, checklistID)
	if err != nil {
		return models.Checklist{}, err
	}
	items, err := s.items.ListByChecklist(ctx, cl.ID)
	if err != nil {
		return models.Checklist{}, err
	}
	cl.Items = items
	return *cl, nil
}

// Delete removes an owned checklist together with its items.
func (s *ChecklistService) Delete(ctx context.Context, userID, checklistID int) error {
	if _, err := resolveOwnedChecklist(ctx, s.checklists, userID, checklistID); err != nil {
		return err
	}
	return s.checklists.Delete(ctx, checklistID)
}
