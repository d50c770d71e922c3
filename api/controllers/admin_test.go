package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nexlyn/storefront-backend/api/middleware"
	"github.com/nexlyn/storefront-backend/pkg/session"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

func adminRequest(t *testing.T, handler http.HandlerFunc, method, target string, body *strings.Reader, unlocked bool, sessions *fakeSessions) *httptest.ResponseRecorder {
	t.Helper()
	if sessions.states == nil {
		sessions.states = map[string]*session.State{}
	}
	state := session.NewState()
	state.AdminUnlocked = unlocked
	sessions.states["visitor-1"] = state

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req = req.WithContext(middleware.WithSessionID(req.Context(), "visitor-1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAdminUnlockHappyPath(t *testing.T) {
	logg := testLogger(t)
	svc := &fakeAdmin{passcode: "nx-master-key"}
	sessions := &fakeSessions{}

	rec := adminRequest(t, AdminUnlock(svc, sessions, logg), http.MethodPost, "/api/v1/admin/unlock",
		strings.NewReader(`{"passcode":"nx-master-key"}`), false, sessions)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	state := sessions.states["visitor-1"]
	if !state.AdminUnlocked {
		t.Fatalf("expected gate open after unlock")
	}
}

func TestAdminUnlockWrongPasscode(t *testing.T) {
	logg := testLogger(t)
	svc := &fakeAdmin{passcode: "nx-master-key"}
	sessions := &fakeSessions{}

	rec := adminRequest(t, AdminUnlock(svc, sessions, logg), http.MethodPost, "/api/v1/admin/unlock",
		strings.NewReader(`{"passcode":"guess"}`), false, sessions)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
	if sessions.states["visitor-1"].AdminUnlocked {
		t.Fatalf("gate must stay closed on wrong passcode")
	}
}

func TestAdminDraftStartRequiresUnlock(t *testing.T) {
	logg := testLogger(t)
	svc := &fakeAdmin{}
	sessions := &fakeSessions{}

	rec := adminRequest(t, AdminDraftStart(svc, sessions, logg), http.MethodPost, "/api/v1/admin/products/draft",
		strings.NewReader(`{}`), false, sessions)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for locked session got %d", rec.Code)
	}
}

func TestAdminDraftStartCreateVsEdit(t *testing.T) {
	logg := testLogger(t)
	svc := &fakeAdmin{}
	sessions := &fakeSessions{}

	rec := adminRequest(t, AdminDraftStart(svc, sessions, logg), http.MethodPost, "/api/v1/admin/products/draft",
		strings.NewReader(`{}`), true, sessions)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for blank draft got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Data types.Product `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if created.Data.ID != "draft-new" {
		t.Fatalf("expected fresh draft id got %q", created.Data.ID)
	}

	rec = adminRequest(t, AdminDraftStart(svc, sessions, logg), http.MethodPost, "/api/v1/admin/products/draft",
		strings.NewReader(`{"productId":"prod-1"}`), true, sessions)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for edit draft got %d", rec.Code)
	}
	var edited struct {
		Data types.Product `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &edited); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if edited.Data.ID != "prod-1" {
		t.Fatalf("expected edit draft for prod-1 got %q", edited.Data.ID)
	}
}

func TestAdminDraftSavePersistsSessionState(t *testing.T) {
	logg := testLogger(t)
	svc := &fakeAdmin{}
	sessions := &fakeSessions{}
	sessions.states = map[string]*session.State{}
	state := session.NewState()
	state.AdminUnlocked = true
	state.Draft = &types.Product{ID: "draft-1", Name: "hAP ax3", Code: "C53"}
	sessions.states["visitor-1"] = state

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products/draft/save", nil)
	req = req.WithContext(middleware.WithSessionID(req.Context(), "visitor-1"))
	rec := httptest.NewRecorder()
	AdminDraftSave(svc, sessions, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.drafts) != 1 || svc.drafts[0].ID != "draft-1" {
		t.Fatalf("expected draft committed, got %v", svc.drafts)
	}
	if sessions.states["visitor-1"].Draft != nil {
		t.Fatalf("expected draft cleared after save")
	}
	if sessions.saves == 0 {
		t.Fatalf("expected session state written back")
	}
}

func TestAdminProductDeleteForwardsID(t *testing.T) {
	logg := testLogger(t)
	svc := &fakeAdmin{}
	sessions := &fakeSessions{}
	sessions.states = map[string]*session.State{}
	state := session.NewState()
	state.AdminUnlocked = true
	sessions.states["visitor-1"] = state

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/prod-9", nil)
	routeCtx := chiRouteContext("productId", "prod-9")
	req = req.WithContext(middleware.WithSessionID(routeCtx(req.Context()), "visitor-1"))
	rec := httptest.NewRecorder()
	AdminProductDelete(svc, sessions, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != "prod-9" {
		t.Fatalf("expected prod-9 deleted, got %v", svc.deleted)
	}
}

func TestAdminMediaUpload(t *testing.T) {
	logg := testLogger(t)
	svc := &fakeAdmin{uploadURL: "https://res.cloudinary.com/nexlyn/image/upload/v1/router.png"}
	sessions := &fakeSessions{}
	sessions.states = map[string]*session.State{}
	state := session.NewState()
	state.AdminUnlocked = true
	sessions.states["visitor-1"] = state

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "router.png")
	if err != nil {
		t.Fatalf("building form: %v", err)
	}
	if _, err := part.Write([]byte("png-bytes")); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/media", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = req.WithContext(middleware.WithSessionID(req.Context(), "visitor-1"))
	rec := httptest.NewRecorder()
	AdminMediaUpload(svc, sessions, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastUpload != "router.png" {
		t.Fatalf("expected filename forwarded, got %q", svc.lastUpload)
	}
	if !strings.Contains(rec.Body.String(), "res.cloudinary.com") {
		t.Fatalf("expected hosted url in response: %s", rec.Body.String())
	}
}

func TestAdminMediaUploadRequiresFile(t *testing.T) {
	logg := testLogger(t)
	svc := &fakeAdmin{}
	sessions := &fakeSessions{}
	sessions.states = map[string]*session.State{}
	state := session.NewState()
	state.AdminUnlocked = true
	sessions.states["visitor-1"] = state

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.Close(); err != nil {
		t.Fatalf("closing form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/media", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = req.WithContext(middleware.WithSessionID(req.Context(), "visitor-1"))
	rec := httptest.NewRecorder()
	AdminMediaUpload(svc, sessions, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
