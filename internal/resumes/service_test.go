package resumes

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-backend/internal/pdf"
	"portfolio-backend/internal/shared/storage/object/local"
)

func testService(t *testing.T) *Service {
	t.Helper()
	return &Service{
		Repo:     NewMemoryRepo(),
		Store:    local.New(t.TempDir()),
		Renderer: pdf.NewGenerator(),
		Now: func() time.Time {
			return time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestCreateRendersPDF(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	resume, err := svc.Create(ctx, Resume{Name: "Jane Doe", Title: "Engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resume.PDFKey == "" {
		t.Fatalf("expected pdf key after create")
	}

	data, fileName, err := svc.DownloadPDF(ctx, resume.ID)
	if err != nil {
		t.Fatalf("DownloadPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected PDF bytes, got %q", data[:min(8, len(data))])
	}
	if fileName != "Jane_Doe_Resume.pdf" {
		t.Fatalf("unexpected filename %q", fileName)
	}
}

func TestCreateRequiresName(t *testing.T) {
	svc := testService(t)

	if _, err := svc.Create(context.Background(), Resume{Name: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMutationRegeneratesPDF(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	resume, err := svc.Create(ctx, Resume{Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	before, _, err := svc.DownloadPDF(ctx, resume.ID)
	if err != nil {
		t.Fatalf("DownloadPDF: %v", err)
	}

	start := time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC)
	if _, err := svc.AddExperience(ctx, Experience{
		ResumeID:    resume.ID,
		Company:     "Acme Corp",
		Position:    "Senior Software Engineer",
		StartDate:   &start,
		Current:     true,
		Description: "Led the platform team.\nShipped the billing rewrite.",
	}); err != nil {
		t.Fatalf("AddExperience: %v", err)
	}

	after, _, err := svc.DownloadPDF(ctx, resume.ID)
	if err != nil {
		t.Fatalf("DownloadPDF after mutation: %v", err)
	}
	if bytes.Equal(before, after) {
		t.Fatalf("expected pdf to change after adding experience")
	}
}

func TestDownloadPDFRendersOnDemand(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	resume, err := svc.Create(ctx, Resume{Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.DeletePDF(ctx, resume.ID); err != nil {
		t.Fatalf("DeletePDF: %v", err)
	}

	got, err := svc.Get(ctx, resume.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.PDFKey != "" {
		t.Fatalf("expected empty pdf key after delete")
	}

	data, _, err := svc.DownloadPDF(ctx, resume.ID)
	if err != nil {
		t.Fatalf("DownloadPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected on-demand render to produce PDF bytes")
	}
}

func TestDeletePDFTwiceReturnsErrNoPDF(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	resume, err := svc.Create(ctx, Resume{Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.DeletePDF(ctx, resume.ID); err != nil {
		t.Fatalf("DeletePDF: %v", err)
	}
	if err := svc.DeletePDF(ctx, resume.ID); !errors.Is(err, ErrNoPDF) {
		t.Fatalf("expected ErrNoPDF, got %v", err)
	}
}

func TestActivateSwitchesActiveResume(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, Resume{Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("Create first: %v", err)
	}
	second, err := svc.Create(ctx, Resume{Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}

	if _, err := svc.Activate(ctx, first.ID); err != nil {
		t.Fatalf("Activate first: %v", err)
	}
	if _, err := svc.Activate(ctx, second.ID); err != nil {
		t.Fatalf("Activate second: %v", err)
	}

	active, err := svc.Active(ctx)
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if active.ID != second.ID {
		t.Fatalf("expected active resume %s, got %s", second.ID, active.ID)
	}

	got, err := svc.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("Get first: %v", err)
	}
	if got.IsActive {
		t.Fatalf("expected first resume deactivated")
	}
}

type failingRenderer struct{}

func (failingRenderer) Render(ctx context.Context, snap pdf.Snapshot, now time.Time) ([]byte, error) {
	return nil, errors.New("boom")
}

func TestCreateSurvivesRenderFailure(t *testing.T) {
	svc := testService(t)
	svc.Renderer = failingRenderer{}
	ctx := context.Background()

	resume, err := svc.Create(ctx, Resume{Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resume.PDFKey != "" {
		t.Fatalf("expected no pdf key when render fails")
	}

	if _, _, err := svc.DownloadPDF(ctx, resume.ID); err == nil {
		t.Fatalf("expected download to fail while renderer is broken")
	}
}

func TestDeleteResumeRemovesChildren(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	resume, err := svc.Create(ctx, Resume{Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.AddSkill(ctx, Skill{ResumeID: resume.ID, Name: "Go", Level: "expert"}); err != nil {
		t.Fatalf("AddSkill: %v", err)
	}

	if err := svc.Delete(ctx, resume.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, resume.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
