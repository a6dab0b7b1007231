package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jafar554/satr-panel/internal/notify"
)

type fakeToastSource struct {
	toasts []notify.Toast
}

func (f *fakeToastSource) Active() []notify.Toast { return f.toasts }

func TestHandleNotifications_ActiveToasts(t *testing.T) {
	t.Parallel()

	src := &fakeToastSource{toasts: []notify.Toast{
		{ID: 1, Message: "تم الحفظ", Level: notify.LevelSuccess, ExpiresAt: time.Now().Add(3 * time.Second)},
	}}
	handler := HandleNotifications(src)

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp notificationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(resp.Toasts) != 1 {
		t.Fatalf("expected one toast, got %d", len(resp.Toasts))
	}
	if resp.Toasts[0].Message != "تم الحفظ" {
		t.Fatalf("unexpected message %q", resp.Toasts[0].Message)
	}
}

func TestHandleNotifications_EmptyIsArray(t *testing.T) {
	t.Parallel()

	handler := HandleNotifications(&fakeToastSource{})

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if body == "" || body == "null" {
		t.Fatalf("expected JSON object body, got %q", body)
	}

	var resp notificationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Toasts == nil {
		t.Fatal("expected empty array, got null")
	}
}
