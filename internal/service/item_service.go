package service

import (
	"context"

	"checklist_api/internal/models"
	"checklist_api/internal/repository"
)

// ItemService implements todo item CRUD; ownership is resolved through the
// item's parent checklist.
type ItemService struct {
	checklists repository.Checklists
	items      repository.Items
}

func NewItemService(checklists repository.Checklists, items repository.Items) *ItemService {
	return &ItemService{checklists: checklists, items: items}
}

var _ Items = (*ItemService)(nil)

// ownedItem is the single ownership gate for item-addressed operations:
// absent → ErrItemNotFound, parent owned by someone else → ErrNotOwner.
func (s *ItemService) ownedItem(ctx context.Context, userID, itemID int) (*models.Item, error) {
	it, ownerID, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, ErrItemNotFound
	}
	if ownerID != userID {
		return nil, ErrNotOwner
	}
	return it, nil
}

// Create attaches a new item to an owned checklist.
func (s *ItemService) Create(ctx context.Context, userID, checklistID int, p ItemParams) (models.Item, error) {
	if _, err := resolveOwnedChecklist(ctx, s.checklists, userID, checklistID); err != nil {
		return models.Item{}, err
	}
	return s.items.Create(ctx, models.Item{
		Name:        p.Name,
		Completed:   p.Completed,
		ChecklistID: checklistID,
	})
}

// List returns all items of an owned checklist.
func (s *ItemService) List(ctx context.Context, userID, checklistID int) ([]models.Item, error) {
	if _, err := resolveOwnedChecklist(ctx, s.checklists, userID, checklistID); err != nil {
		return nil, err
	}
	return s.items.ListByChecklist(ctx, checklistID)
}

// Update applies a partial update; fields absent from the request keep
// their stored values.
func (s *ItemService) Update(ctx context.Context, userID, itemID int, p ItemUpdateParams) (models.Item, error) {
	it, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return models.Item{}, err
	}
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Completed != nil {
		it.Completed = *p.Completed
	}
	if err := s.items.Update(ctx, *it); err != nil {
		return models.Item{}, err
	}
	return *it, nil
}

// ToggleStatus flips the item's completed flag.
func (s *ItemService) ToggleStatus(ctx context.Context, userID, itemID int) (models.Item, error) {
	it, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return models.Item{}, err
	}
	it.Completed = !it.Completed
	if err := s.items.Update(ctx, *it); err != nil {
		return models.Item{}, err
	}
	return *it, nil
}

// Delete removes an owned item.
func (s *ItemService) Delete(ctx context.Context, userID, itemID int) error {
	if _, err := s.ownedItem(ctx, userID, itemID); err != nil {
		return err
	}
	return s.items.Delete(ctx, itemID)
}
