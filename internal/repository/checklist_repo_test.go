package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"checklist_api/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockChecklistRepo(t *testing.T) (*ChecklistSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewChecklistSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestChecklistSQLite_Create_WithItems(t *testing.T) {
	repo, mock, cleanup := newMockChecklistRepo(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertChecklistSQL)).
		WithArgs("Groceries", "weekly run", 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertItemSQL)).
		WithArgs("milk", false, 10).
		WillReturnResult(sqlmock.NewResult(100, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertItemSQL)).
		WithArgs("eggs", true, 10).
		WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(),
		models.Checklist{Title: "Groceries", Description: "weekly run", UserID: 1},
		[]models.Item{
			{Name: "milk"},
			{Name: "eggs", Completed: true},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 10 {
		t.Fatalf("expected checklist id 10, got %d", created.ID)
	}
	if len(created.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(created.Items))
	}
	if created.Items[0].ID != 100 || created.Items[0].Completed {
		t.Fatalf("unexpected first item: %+v", created.Items[0])
	}
	if created.Items[1].ID != 101 || !created.Items[1].Completed {
		t.Fatalf("unexpected second item: %+v", created.Items[1])
	}
	for _, it := range created.Items {
		if it.ChecklistID != 10 {
			t.Fatalf("item not linked to checklist: %+v", it)
		}
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestChecklistSQLite_Create_ItemInsertFailureRollsBack(t *testing.T) {
	repo, mock, cleanup := newMockChecklistRepo(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertChecklistSQL)).
		WithArgs("Groceries", "", 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertItemSQL)).
		WithArgs("milk", false, 10).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(),
		models.Checklist{Title: "Groceries", UserID: 1},
		[]models.Item{{Name: "milk"}},
	)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !contains(err.Error(), "insert item") {
		t.Fatalf("expected insert item error, got %q", err.Error())
	}
}

func TestChecklistSQLite_GetByID(t *testing.T) {
	repo, mock, cleanup := newMockChecklistRepo(t)
	defer cleanup()

	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "title", "description", "user_id", "created_at"}).
		AddRow(10, "Groceries", "weekly run", 1, createdAt)
	mock.ExpectQuery(regexp.QuoteMeta(selectChecklistByIDSQL)).
		WithArgs(10).
		WillReturnRows(rows)

	cl, err := repo.GetByID(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cl == nil {
		t.Fatal("expected checklist, got nil")
	}
	if cl.ID != 10 || cl.Title != "Groceries" || cl.UserID != 1 {
		t.Fatalf("unexpected checklist: %+v", cl)
	}
	if !cl.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected created_at: %v", cl.CreatedAt)
	}
}

func TestChecklistSQLite_GetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := newMockChecklistRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectChecklistByIDSQL)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "user_id", "created_at"}))

	cl, err := repo.GetByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cl != nil {
		t.Fatalf("expected nil checklist, got %+v", cl)
	}
}

func TestChecklistSQLite_ListByUser(t *testing.T) {
	repo, mock, cleanup := newMockChecklistRepo(t)
	defer cleanup()

	newer := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	older := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "title", "description", "user_id", "created_at"}).
		AddRow(11, "Second", nil, 1, newer).
		AddRow(10, "First", "d", 1, older)
	mock.ExpectQuery(regexp.QuoteMeta(selectChecklistsByUserSQL)).
		WithArgs(1).
		WillReturnRows(rows)

	checklists, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(checklists) != 2 {
		t.Fatalf("expected 2 checklists, got %d", len(checklists))
	}
	if checklists[0].ID != 11 || checklists[1].ID != 10 {
		t.Fatalf("expected newest first, got %+v", checklists)
	}
	// NULL description scans to empty string
	if checklists[0].Description != "" {
		t.Fatalf("expected empty description, got %q", checklists[0].Description)
	}
}

func TestChecklistSQLite_Delete_ItemsThenChecklist(t *testing.T) {
	repo, mock, cleanup := newMockChecklistRepo(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteItemsByChecklistSQL)).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(deleteChecklistSQL)).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestChecklistSQLite_Delete_ChecklistFailureRollsBack(t *testing.T) {
	repo, mock, cleanup := newMockChecklistRepo(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteItemsByChecklistSQL)).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(deleteChecklistSQL)).
		WithArgs(10).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 10)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !contains(err.Error(), "delete checklist") {
		t.Fatalf("expected delete checklist error, got %q", err.Error())
	}
}
