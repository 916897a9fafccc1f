package services

import (
	"errors"
	"testing"

	"github.com/sahanavh/cognicare/internal/models"
)

type stubChecklistRepo struct {
	items       map[uint]models.ChecklistItem
	nextID      uint
	updateCalls int
}

func newStubChecklistRepo() *stubChecklistRepo {
	return &stubChecklistRepo{items: make(map[uint]models.ChecklistItem), nextID: 1}
}

func (stub *stubChecklistRepo) Create(item *models.ChecklistItem) error {
	item.ID = stub.nextID
	stub.nextID++
	stub.items[item.ID] = *item
	return nil
}

func (stub *stubChecklistRepo) ListByUser(userID uint) ([]models.ChecklistItem, error) {
	listed := make([]models.ChecklistItem, 0)
	for _, item := range stub.items {
		if item.UserID == userID {
			listed = append(listed, item)
		}
	}
	return listed, nil
}

func (stub *stubChecklistRepo) UpdateCompletion(itemID uint, userID uint, isCompleted bool) (int64, error) {
	stub.updateCalls++
	item, ok := stub.items[itemID]
	if !ok || item.UserID != userID {
		return 0, nil
	}
	item.IsCompleted = isCompleted
	stub.items[itemID] = item
	return 1, nil
}

func (stub *stubChecklistRepo) DeleteByIDForUser(itemID uint, userID uint) (int64, error) {
	item, ok := stub.items[itemID]
	if !ok || item.UserID != userID {
		return 0, nil
	}
	delete(stub.items, itemID)
	return 1, nil
}

func TestAddItemRejectsBlankContent(t *testing.T) {
	service := NewChecklistService(newStubChecklistRepo())

	_, err := service.AddItem(3, "   ")
	if !errors.Is(err, ErrEmptyChecklistContent) {
		t.Fatalf("expected ErrEmptyChecklistContent, got %v", err)
	}
}

func TestAddItemStartsUncompleted(t *testing.T) {
	repo := newStubChecklistRepo()
	service := NewChecklistService(repo)

	item, err := service.AddItem(3, "Drink water")
	if err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}
	if item.IsCompleted {
		t.Fatal("expected new item to start uncompleted")
	}
	if item.ID == 0 {
		t.Fatal("expected new item to receive an id")
	}
}

func TestSetCompletedIsIdempotent(t *testing.T) {
	repo := newStubChecklistRepo()
	service := NewChecklistService(repo)

	item, err := service.AddItem(3, "Sleep 8 hours")
	if err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	for run := 0; run < 2; run++ {
		if err := service.SetCompleted(3, item.ID, true); err != nil {
			t.Fatalf("SetCompleted() run %d unexpected error: %v", run, err)
		}
	}
	if !repo.items[item.ID].IsCompleted {
		t.Fatal("expected item to stay completed")
	}
}

func TestSetCompletedHidesForeignItems(t *testing.T) {
	repo := newStubChecklistRepo()
	service := NewChecklistService(repo)

	item, err := service.AddItem(3, "Walk 30 minutes")
	if err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	err = service.SetCompleted(99, item.ID, true)
	if !errors.Is(err, ErrChecklistItemNotFound) {
		t.Fatalf("expected ErrChecklistItemNotFound for foreign owner, got %v", err)
	}
}

func TestRemoveItemHidesForeignItems(t *testing.T) {
	repo := newStubChecklistRepo()
	service := NewChecklistService(repo)

	item, err := service.AddItem(3, "Stretch")
	if err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	if err := service.RemoveItem(99, item.ID); !errors.Is(err, ErrChecklistItemNotFound) {
		t.Fatalf("expected ErrChecklistItemNotFound for foreign owner, got %v", err)
	}
	if err := service.RemoveItem(3, item.ID); err != nil {
		t.Fatalf("RemoveItem() unexpected error for owner: %v", err)
	}
	if err := service.RemoveItem(3, item.ID); !errors.Is(err, ErrChecklistItemNotFound) {
		t.Fatalf("expected ErrChecklistItemNotFound after delete, got %v", err)
	}
}
