package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/sahanavh/cognicare/internal/models"
)

func TestAddChecklistItemReturnsCreatedItem(t *testing.T) {
	app, database := newTestApp(t, nil)
	user := createTestUser(t, database, "a@x.com", "pw1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "pw1")

	request := jsonRequest(t, http.MethodPost, "/add_checklist_item", map[string]string{
		"content": "Drink water",
	})
	request.Header.Set("Cookie", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("add item request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	payload := struct {
		Message string            `json:"message"`
		Item    checklistItemView `json:"item"`
	}{}
	decodeJSONBody(t, response, &payload)
	if payload.Message != "Item added!" {
		t.Fatalf("unexpected message: %q", payload.Message)
	}
	if payload.Item.ItemID == 0 || payload.Item.Content != "Drink water" || payload.Item.IsCompleted {
		t.Fatalf("unexpected item payload: %+v", payload.Item)
	}
}

func TestAddChecklistItemRejectsEmptyContent(t *testing.T) {
	app, database := newTestApp(t, nil)
	user := createTestUser(t, database, "a@x.com", "pw1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "pw1")

	request := jsonRequest(t, http.MethodPost, "/add_checklist_item", map[string]string{
		"content": "",
	})
	request.Header.Set("Cookie", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("add item request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}

	payload := map[string]string{}
	decodeJSONBody(t, response, &payload)
	if payload["message"] != "Content cannot be empty." {
		t.Fatalf("unexpected message: %q", payload["message"])
	}
}

func TestGetChecklistItemsListsOwnItemsInCreationOrder(t *testing.T) {
	app, database := newTestApp(t, nil)
	user := createTestUser(t, database, "a@x.com", "pw1")
	other := createTestUser(t, database, "b@x.com", "pw2")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "pw1")

	for _, content := range []string{"first", "second"} {
		if err := database.Create(&models.ChecklistItem{UserID: user.ID, Content: content}).Error; err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}
	if err := database.Create(&models.ChecklistItem{UserID: other.ID, Content: "foreign"}).Error; err != nil {
		t.Fatalf("seed foreign item: %v", err)
	}

	request := jsonRequest(t, http.MethodGet, "/get_checklist_items", nil)
	request.Header.Set("Cookie", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	items := []checklistItemView{}
	decodeJSONBody(t, response, &items)
	if len(items) != 2 {
		t.Fatalf("expected 2 owned items, got %d", len(items))
	}
	if items[0].Content != "first" || items[1].Content != "second" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestUpdateChecklistItemToggleIsIdempotent(t *testing.T) {
	app, database := newTestApp(t, nil)
	user := createTestUser(t, database, "a@x.com", "pw1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "pw1")

	item := models.ChecklistItem{UserID: user.ID, Content: "Sleep 8 hours"}
	if err := database.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}

	for run := 0; run < 2; run++ {
		request := jsonRequest(t, http.MethodPost, fmt.Sprintf("/update_checklist_item/%d", item.ID), map[string]bool{
			"is_completed": true,
		})
		request.Header.Set("Cookie", authCookie)
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("toggle run %d failed: %v", run, err)
		}
		response.Body.Close()
		if response.StatusCode != http.StatusOK {
			t.Fatalf("toggle run %d: expected status 200, got %d", run, response.StatusCode)
		}
	}

	var stored models.ChecklistItem
	if err := database.First(&stored, item.ID).Error; err != nil {
		t.Fatalf("load item: %v", err)
	}
	if !stored.IsCompleted {
		t.Fatal("expected item to stay completed after repeated toggles")
	}
}

func TestChecklistOwnershipMismatchReadsAsNotFound(t *testing.T) {
	app, database := newTestApp(t, nil)
	owner := createTestUser(t, database, "a@x.com", "pw1")
	intruder := createTestUser(t, database, "b@x.com", "pw2")
	intruderCookie := loginAndExtractAuthCookie(t, app, intruder.Email, "pw2")

	item := models.ChecklistItem{UserID: owner.ID, Content: "private"}
	if err := database.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}

	paths := []string{
		fmt.Sprintf("/update_checklist_item/%d", item.ID),
		fmt.Sprintf("/delete_checklist_item/%d", item.ID),
	}
	for _, path := range paths {
		request := jsonRequest(t, http.MethodPost, path, map[string]bool{"is_completed": true})
		request.Header.Set("Cookie", intruderCookie)
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("%s request failed: %v", path, err)
		}

		if response.StatusCode != http.StatusNotFound {
			t.Fatalf("%s: expected status 404, got %d", path, response.StatusCode)
		}
		payload := map[string]string{}
		decodeJSONBody(t, response, &payload)
		response.Body.Close()
		if payload["message"] != "Item not found." {
			t.Fatalf("%s: expected disguised not-found message, got %q", path, payload["message"])
		}
	}

	var stored models.ChecklistItem
	if err := database.First(&stored, item.ID).Error; err != nil {
		t.Fatalf("expected foreign item to survive, got %v", err)
	}
	if stored.IsCompleted {
		t.Fatal("expected foreign item to stay unmodified")
	}
}

func TestDeleteChecklistItemRemovesOwnItem(t *testing.T) {
	app, database := newTestApp(t, nil)
	user := createTestUser(t, database, "a@x.com", "pw1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "pw1")

	item := models.ChecklistItem{UserID: user.ID, Content: "temporary"}
	if err := database.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}

	request := jsonRequest(t, http.MethodPost, fmt.Sprintf("/delete_checklist_item/%d", item.ID), nil)
	request.Header.Set("Cookie", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("delete request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var count int64
	if err := database.Model(&models.ChecklistItem{}).Where("id = ?", item.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 0 {
		t.Fatal("expected item row to be deleted")
	}
}
