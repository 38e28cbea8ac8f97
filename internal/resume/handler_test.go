package resume_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/bootstrap"
	"resume-builder/internal/shared/auth"
	"resume-builder/internal/shared/config"
)

func buildTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func tokenFor(t *testing.T, userID, plan string) string {
	t.Helper()
	token, err := auth.SignJWT(auth.Claims{Sub: userID, Plan: plan})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func createResume(t *testing.T, router http.Handler, token string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/resumes", token, map[string]any{
		"document": map[string]any{
			"personalInfo": map[string]any{"name": "Ada Lovelace"},
			"summary":      "Engineer.",
		},
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ResumeID string `json:"resumeId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ResumeID == "" {
		t.Fatalf("expected resumeId, got empty")
	}
	return created.ResumeID
}

func errorCode(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return envelope.Error.Code
}

func TestResumeRequiresToken(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app.Router, http.MethodGet, "/api/v1/resumes", "", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestResumeOwnershipDistinguishesForbiddenFromNotFound(t *testing.T) {
	app := buildTestApp(t)
	owner := tokenFor(t, "owner-1", "free")
	other := tokenFor(t, "other-1", "free")

	id := createResume(t, app.Router, owner)

	// Non-owner read of an existing resume is forbidden, not hidden.
	resp := doJSON(t, app.Router, http.MethodGet, "/api/v1/resumes/"+id, other, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", resp.Code)
	}

	// A nonexistent id is not-found for everyone.
	resp = doJSON(t, app.Router, http.MethodGet, "/api/v1/resumes/nope", owner, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing id, got %d", resp.Code)
	}
}

func TestResumeDeleteByNonOwnerLeavesResumeIntact(t *testing.T) {
	app := buildTestApp(t)
	owner := tokenFor(t, "owner-2", "free")
	other := tokenFor(t, "other-2", "free")

	id := createResume(t, app.Router, owner)

	resp := doJSON(t, app.Router, http.MethodDelete, "/api/v1/resumes/"+id, other, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}

	resp = doJSON(t, app.Router, http.MethodGet, "/api/v1/resumes/"+id, owner, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected owner fetch to still succeed, got %d", resp.Code)
	}

	resp = doJSON(t, app.Router, http.MethodDelete, "/api/v1/resumes/"+id, owner, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for owner delete, got %d", resp.Code)
	}

	resp = doJSON(t, app.Router, http.MethodGet, "/api/v1/resumes/"+id, owner, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.Code)
	}
}

func TestResumeUpdateNeverTrustsClientOwner(t *testing.T) {
	app := buildTestApp(t)
	owner := tokenFor(t, "owner-3", "free")
	other := tokenFor(t, "other-3", "free")

	id := createResume(t, app.Router, owner)

	resp := doJSON(t, app.Router, http.MethodPut, "/api/v1/resumes/"+id, other, map[string]any{
		"document": map[string]any{"summary": "hijacked"},
	})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}

	resp = doJSON(t, app.Router, http.MethodGet, "/api/v1/resumes/"+id, owner, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var fetched struct {
		Document struct {
			Summary string `json:"summary"`
		} `json:"document"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if fetched.Document.Summary != "Engineer." {
		t.Fatalf("expected document unchanged, got %q", fetched.Document.Summary)
	}
}

func TestResumeFreePlanQuota(t *testing.T) {
	app := buildTestApp(t)
	token := tokenFor(t, "quota-user", "free")

	for i := 0; i < 3; i++ {
		resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/resumes", token, map[string]any{
			"document": map[string]any{"summary": fmt.Sprintf("resume %d", i)},
		})
		if resp.Code != http.StatusCreated {
			t.Fatalf("create %d: expected 201, got %d: %s", i, resp.Code, resp.Body.String())
		}
	}

	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/resumes", token, map[string]any{
		"document": map[string]any{"summary": "one too many"},
	})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 over quota, got %d", resp.Code)
	}
	if code := errorCode(t, resp); code != "plan_limit_reached" {
		t.Fatalf("expected plan_limit_reached, got %q", code)
	}
}

func TestResumeCreateRejectsMalformedDocument(t *testing.T) {
	app := buildTestApp(t)
	token := tokenFor(t, "schema-user", "free")

	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/resumes", token, map[string]any{
		"document": map[string]any{"skills": []string{"flat", "strings"}},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if code := errorCode(t, resp); code != "invalid_document" {
		t.Fatalf("expected invalid_document, got %q", code)
	}
}
