package resumes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/bootstrap"
	"portfolio-backend/internal/shared/config"
)

func buildTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		OwnerPassword:   "hunter2",
		JWTSecret:       "test-secret",
		JWTTTLHours:     1,
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func ownerLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	resp := doJSON(router, http.MethodPost, "/api/v1/auth/login", `{"password":"hunter2"}`, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if body.Token == "" {
		t.Fatalf("expected a token")
	}
	return body.Token
}

func doJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestResumeLifecycle(t *testing.T) {
	router := buildTestApp(t)
	token := ownerLogin(t, router)

	// Create a resume.
	resp := doJSON(router, http.MethodPost, "/api/v1/resumes",
		`{"name":"Jane Doe","title":"Engineer","email":"jane@example.com","summary":"Builds backends."}`, token)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ResumeID string `json:"resumeId"`
		HasPDF   bool   `json:"hasPdf"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ResumeID == "" {
		t.Fatalf("expected resumeId, got empty")
	}
	if !created.HasPDF {
		t.Fatalf("expected a rendered pdf after create")
	}

	// Attach an experience entry.
	resp = doJSON(router, http.MethodPost, "/api/v1/resumes/"+created.ResumeID+"/experiences",
		`{"company":"Acme","position":"Engineer","startDate":"2021-04-01","current":true,"description":"Shipped things."}`, token)
	if resp.Code != http.StatusCreated {
		t.Fatalf("add experience: expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	// Detail includes the experience.
	resp = doJSON(router, http.MethodGet, "/api/v1/resumes/"+created.ResumeID, "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("get: expected status 200, got %d", resp.Code)
	}
	var detail struct {
		ResumeID    string `json:"resumeId"`
		Experiences []struct {
			Company   string  `json:"company"`
			StartDate *string `json:"startDate"`
		} `json:"experiences"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		t.Fatalf("decode detail response: %v", err)
	}
	if len(detail.Experiences) != 1 || detail.Experiences[0].Company != "Acme" {
		t.Fatalf("expected one Acme experience, got %+v", detail.Experiences)
	}
	if detail.Experiences[0].StartDate == nil || *detail.Experiences[0].StartDate != "2021-04-01" {
		t.Fatalf("expected startDate 2021-04-01, got %v", detail.Experiences[0].StartDate)
	}

	// Download the PDF.
	resp = doJSON(router, http.MethodGet, "/api/v1/resumes/"+created.ResumeID+"/pdf", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("pdf: expected status 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); !strings.Contains(cd, "Jane_Doe_Resume.pdf") {
		t.Fatalf("unexpected Content-Disposition: %q", cd)
	}
	if !bytes.HasPrefix(resp.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected pdf bytes, got %q", resp.Body.String()[:16])
	}

	// Activate and fetch via /resumes/active.
	resp = doJSON(router, http.MethodPost, "/api/v1/resumes/"+created.ResumeID+"/activate", "", token)
	if resp.Code != http.StatusOK {
		t.Fatalf("activate: expected status 200, got %d", resp.Code)
	}
	resp = doJSON(router, http.MethodGet, "/api/v1/resumes/active", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("active: expected status 200, got %d", resp.Code)
	}
	var active struct {
		ResumeID string `json:"resumeId"`
		IsActive bool   `json:"isActive"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&active); err != nil {
		t.Fatalf("decode active response: %v", err)
	}
	if active.ResumeID != created.ResumeID || !active.IsActive {
		t.Fatalf("expected active resume %s, got %+v", created.ResumeID, active)
	}

	// Delete the resume and confirm it is gone.
	resp = doJSON(router, http.MethodDelete, "/api/v1/resumes/"+created.ResumeID, "", token)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("delete: expected status 204, got %d", resp.Code)
	}
	resp = doJSON(router, http.MethodGet, "/api/v1/resumes/"+created.ResumeID, "", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected status 404, got %d", resp.Code)
	}
}

func TestResumeMutationsRequireOwnerToken(t *testing.T) {
	router := buildTestApp(t)

	resp := doJSON(router, http.MethodPost, "/api/v1/resumes", `{"name":"Intruder"}`, "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without a token, got %d", resp.Code)
	}

	resp = doJSON(router, http.MethodPost, "/api/v1/resumes", `{"name":"Intruder"}`, "not-a-jwt")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 with a bad token, got %d", resp.Code)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	router := buildTestApp(t)

	resp := doJSON(router, http.MethodPost, "/api/v1/auth/login", `{"password":"guess"}`, "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestDeletePDFThenDownloadRerenders(t *testing.T) {
	router := buildTestApp(t)
	token := ownerLogin(t, router)

	resp := doJSON(router, http.MethodPost, "/api/v1/resumes", `{"name":"Jane Doe"}`, token)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: expected status 201, got %d", resp.Code)
	}
	var created struct {
		ResumeID string `json:"resumeId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	resp = doJSON(router, http.MethodDelete, "/api/v1/resumes/"+created.ResumeID+"/pdf", "", token)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("delete pdf: expected status 204, got %d", resp.Code)
	}

	// A second delete has nothing left to remove.
	resp = doJSON(router, http.MethodDelete, "/api/v1/resumes/"+created.ResumeID+"/pdf", "", token)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("second delete pdf: expected status 404, got %d", resp.Code)
	}

	// Download renders on demand.
	resp = doJSON(router, http.MethodGet, "/api/v1/resumes/"+created.ResumeID+"/pdf", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("pdf after delete: expected status 200, got %d", resp.Code)
	}
	if !bytes.HasPrefix(resp.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected pdf bytes after re-render")
	}
}
