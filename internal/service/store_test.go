package service

import (
	"context"
	"sort"
	"time"

	"checklist_api/internal/models"
)

// memDB is a shared in-memory store backing the fake repositories below.
type memDB struct {
	checklists map[int]models.Checklist
	items      map[int]models.Item

	nextChecklistID int
	nextItemID      int

	// injectable failures
	checklistErr error
	itemErr      error
}

func newMemDB() *memDB {
	return &memDB{
		checklists:      make(map[int]models.Checklist),
		items:           make(map[int]models.Item),
		nextChecklistID: 1,
		nextItemID:      1,
	}
}

type fakeChecklistRepo struct {
	db *memDB
}

func (f *fakeChecklistRepo) Create(ctx context.Context, cl models.Checklist, items []models.Item) (models.Checklist, error) {
	if f.db.checklistErr != nil {
		return models.Checklist{}, f.db.checklistErr
	}
	cl.ID = f.db.nextChecklistID
	f.db.nextChecklistID++
	if cl.CreatedAt.IsZero() {
		cl.CreatedAt = time.Now().UTC()
	}
	cl.Items = make([]models.Item, 0, len(items))
	for _, it := range items {
		it.ID = f.db.nextItemID
		f.db.nextItemID++
		it.ChecklistID = cl.ID
		f.db.items[it.ID] = it
		cl.Items = append(cl.Items, it)
	}
	stored := cl
	stored.Items = nil
	f.db.checklists[cl.ID] = stored
	return cl, nil
}

func (f *fakeChecklistRepo) GetByID(ctx context.Context, id int) (*models.Checklist, error) {
	if f.db.checklistErr != nil {
		return nil, f.db.checklistErr
	}
	cl, ok := f.db.checklists[id]
	if !ok {
		return nil, nil
	}
	return &cl, nil
}

func (f *fakeChecklistRepo) ListByUser(ctx context.Context, userID int) ([]models.Checklist, error) {
	if f.db.checklistErr != nil {
		return nil, f.db.checklistErr
	}
	out := make([]models.Checklist, 0)
	for _, cl := range f.db.checklists {
		if cl.UserID == userID {
			out = append(out, cl)
		}
	}
	// newest-created first, id as tiebreaker
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeChecklistRepo) Delete(ctx context.Context, id int) error {
	if f.db.checklistErr != nil {
		return f.db.checklistErr
	}
	for itemID, it := range f.db.items {
		if it.ChecklistID == id {
			delete(f.db.items, itemID)
		}
	}
	delete(f.db.checklists, id)
	return nil
}

type fakeItemRepo struct {
	db *memDB
}

func (f *fakeItemRepo) Create(ctx context.Context, it models.Item) (models.Item, error) {
	if f.db.itemErr != nil {
		return models.Item{}, f.db.itemErr
	}
	it.ID = f.db.nextItemID
	f.db.nextItemID++
	f.db.items[it.ID] = it
	return it, nil
}

func (f *fakeItemRepo) GetByID(ctx context.Context, id int) (*models.Item, int, error) {
	if f.db.itemErr != nil {
		return nil, 0, f.db.itemErr
	}
	it, ok := f.db.items[id]
	if !ok {
		return nil, 0, nil
	}
	owner := f.db.checklists[it.ChecklistID].UserID
	return &it, owner, nil
}

func (f *fakeItemRepo) ListByChecklist(ctx context.Context, checklistID int) ([]models.Item, error) {
	if f.db.itemErr != nil {
		return nil, f.db.itemErr
	}
	out := make([]models.Item, 0)
	for _, it := range f.db.items {
		if it.ChecklistID == checklistID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeItemRepo) Update(ctx context.Context, it models.Item) error {
	if f.db.itemErr != nil {
		return f.db.itemErr
	}
	f.db.items[it.ID] = it
	return nil
}

func (f *fakeItemRepo) Delete(ctx context.Context, id int) error {
	if f.db.itemErr != nil {
		return f.db.itemErr
	}
	delete(f.db.items, id)
	return nil
}
