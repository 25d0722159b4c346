package main

// Render a sample resume to PDF without running the server:
//   go run ./cmd/renderdemo -out ./out/sample_resume.pdf

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"portfolio-backend/internal/pdf"
)

func main() {
	outPath := flag.String("out", "./out/sample_resume.pdf", "output path for the generated PDF")
	flag.Parse()

	snap := sampleSnapshot()

	gen := pdf.NewGenerator()
	pdfBytes, err := gen.Render(context.Background(), snap, time.Now().UTC())
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if !bytes.HasPrefix(pdfBytes, []byte("%PDF-")) {
		fmt.Fprintf(os.Stderr, "render produced %d bytes without a PDF header\n", len(pdfBytes))
		os.Exit(1)
	}

	if err := writeOutputs(*outPath, snap, pdfBytes); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s (%d bytes)\n", *outPath, len(pdfBytes))
}

func writeOutputs(outPath string, snap pdf.Snapshot, pdfBytes []byte) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := os.WriteFile(outPath, pdfBytes, 0o644); err != nil {
		return err
	}

	snapPath := filepath.Join(dir, "sample_resume_snapshot.json")
	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(snapPath, payload, 0o644)
}

func sampleSnapshot() pdf.Snapshot {
	date := func(year int, month time.Month) *time.Time {
		t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		return &t
	}

	return pdf.Snapshot{
		Name:        "Jordan Lee",
		Title:       "Senior Backend Engineer",
		Email:       "jordan.lee@example.com",
		Phone:       "+1-555-0102",
		Location:    "Austin, TX",
		Summary:     "Backend engineer with 8+ years of experience building resilient APIs and data services. Led platform modernization initiatives spanning cloud migration and observability adoption.",
		GitHubURL:   "https://github.com/jordanlee",
		LinkedInURL: "https://www.linkedin.com/in/jordanlee",
		Experience: []pdf.Experience{
			{
				Company:     "Acme Logistics",
				Position:    "Senior Backend Engineer",
				StartDate:   date(2021, time.April),
				Current:     true,
				Description: "Designed a routing service that reduced shipment latency by 18%. Implemented distributed tracing to cut incident triage time by 35%.",
			},
			{
				Company:     "Blue Harbor Systems",
				Position:    "Backend Engineer",
				StartDate:   date(2018, time.January),
				EndDate:     date(2021, time.March),
				Description: "Built event-driven ingestion pipelines for compliance data feeds.",
			},
		},
		Education: []pdf.Education{
			{
				Institution:  "University of Washington",
				Degree:       "B.S.",
				FieldOfStudy: "Computer Science",
				StartDate:    date(2013, time.September),
				EndDate:      date(2017, time.June),
			},
		},
		Skills: []pdf.Skill{
			{Name: "Go", Level: "expert"},
			{Name: "PostgreSQL", Level: "advanced"},
			{Name: "Kubernetes", Level: "intermediate"},
		},
		Projects: []pdf.Project{
			{
				Name:         "Shipment Tracker",
				Description:  "Real-time shipment tracking dashboard backed by event streams.",
				Technologies: []string{"Go", "PostgreSQL", "Redis"},
				SourceURL:    "https://github.com/jordanlee/shipment-tracker",
				StartDate:    date(2022, time.February),
			},
		},
	}
}
