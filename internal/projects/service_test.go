package projects

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testService() *Service {
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	return &Service{
		Repo: NewMemoryRepo(),
		Now: func() time.Time {
			calls++
			return base.Add(time.Duration(calls) * time.Second)
		},
	}
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := testService()
	if _, err := svc.Create(context.Background(), Project{Title: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateNormalizesTechnologies(t *testing.T) {
	svc := testService()

	project, err := svc.Create(context.Background(), Project{
		Title:        "Portfolio Site",
		Technologies: []string{" Go ", "React", "Go", "  "},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	want := []string{"Go", "React"}
	if len(project.Technologies) != len(want) {
		t.Fatalf("expected %v, got %v", want, project.Technologies)
	}
	for i := range want {
		if project.Technologies[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, project.Technologies)
		}
	}
}

func TestFeaturedFilterAndOrdering(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	plain, err := svc.Create(ctx, Project{Title: "Plain"})
	if err != nil {
		t.Fatalf("Create plain: %v", err)
	}
	starred, err := svc.Create(ctx, Project{Title: "Starred"})
	if err != nil {
		t.Fatalf("Create starred: %v", err)
	}
	if _, err := svc.SetFeatured(ctx, starred.ID, true); err != nil {
		t.Fatalf("SetFeatured: %v", err)
	}

	featured, err := svc.Featured(ctx)
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	if len(featured) != 1 || featured[0].ID != starred.ID {
		t.Fatalf("expected only starred project, got %d items", len(featured))
	}

	all, err := svc.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].ID != starred.ID || all[1].ID != plain.ID {
		t.Fatalf("expected featured project listed first")
	}
}

func TestTechnologyFilter(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	goProj, err := svc.Create(ctx, Project{Title: "API", Technologies: []string{"Go", "Postgres"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, Project{Title: "UI", Technologies: []string{"React"}}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	items, err := svc.List(ctx, Filter{Technology: "Go"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0].ID != goProj.ID {
		t.Fatalf("expected only the Go project, got %d items", len(items))
	}
}

func TestSearchFilter(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, Project{Title: "Chat Server", Description: "websocket chat"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, Project{Title: "Blog", Description: "static site"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	items, err := svc.List(ctx, Filter{Search: "chat"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Chat Server" {
		t.Fatalf("expected only the chat project, got %d items", len(items))
	}
}

func TestAddAndRemoveTechnology(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	project, err := svc.Create(ctx, Project{Title: "API", Technologies: []string{"Go"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.AddTechnology(ctx, project.ID, "Postgres")
	if err != nil {
		t.Fatalf("AddTechnology: %v", err)
	}
	if len(updated.Technologies) != 2 {
		t.Fatalf("expected 2 technologies, got %v", updated.Technologies)
	}

	// Adding a duplicate is a no-op.
	updated, err = svc.AddTechnology(ctx, project.ID, "Postgres")
	if err != nil {
		t.Fatalf("AddTechnology duplicate: %v", err)
	}
	if len(updated.Technologies) != 2 {
		t.Fatalf("expected duplicate add to be a no-op, got %v", updated.Technologies)
	}

	updated, err = svc.RemoveTechnology(ctx, project.ID, "Go")
	if err != nil {
		t.Fatalf("RemoveTechnology: %v", err)
	}
	if len(updated.Technologies) != 1 || updated.Technologies[0] != "Postgres" {
		t.Fatalf("expected only Postgres left, got %v", updated.Technologies)
	}

	techs, err := svc.Technologies(ctx)
	if err != nil {
		t.Fatalf("Technologies: %v", err)
	}
	if len(techs) != 1 || techs[0] != "Postgres" {
		t.Fatalf("unexpected technology set: %v", techs)
	}
}

func TestTechnologyMutationsDoNotAliasRepoState(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	project, err := svc.Create(ctx, Project{Title: "API", Technologies: []string{"Go", "SQL", "Rust"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// A reader fetches the project before a mutation lands.
	before, err := svc.Repo.GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	held := before.Technologies
	snapshot := append([]string(nil), held...)

	if _, err := svc.RemoveTechnology(ctx, project.ID, "Go"); err != nil {
		t.Fatalf("RemoveTechnology: %v", err)
	}
	if _, err := svc.AddTechnology(ctx, project.ID, "Redis"); err != nil {
		t.Fatalf("AddTechnology: %v", err)
	}

	// The reader's slice must not have been rewritten in place.
	for i := range snapshot {
		if held[i] != snapshot[i] {
			t.Fatalf("reader's slice mutated in place: had %v, now %v", snapshot, held)
		}
	}

	after, err := svc.Repo.GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("GetByID after mutation: %v", err)
	}
	want := []string{"SQL", "Rust", "Redis"}
	if len(after.Technologies) != len(want) {
		t.Fatalf("expected %v, got %v", want, after.Technologies)
	}
	for i := range want {
		if after.Technologies[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, after.Technologies)
		}
	}
}

func TestUpdatePreservesFeaturedFlag(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	project, err := svc.Create(ctx, Project{Title: "API"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.SetFeatured(ctx, project.ID, true); err != nil {
		t.Fatalf("SetFeatured: %v", err)
	}

	project.Title = "API v2"
	updated, err := svc.Update(ctx, project)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Featured {
		t.Fatalf("expected featured flag preserved across update")
	}
	if updated.Title != "API v2" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
}
