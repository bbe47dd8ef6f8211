package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) Database {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	d := New(db)
	if err := d.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return d
}

func intPtr(i int) *int { return &i }

func TestCreateThenListIncludesRowWithFreshID(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	clientID := uuid.New()

	created, err := d.Projects().Create(ctx, &models.Project{
		ID:        clientID,
		Title:     "Portfolio",
		TechStack: models.TechStack{"Go", "htmx"},
		Status:    "Live",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == uuid.Nil || created.ID == clientID {
		t.Fatalf("expected a backend-assigned id, got %s", created.ID)
	}

	rows, err := d.Projects().List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != created.ID {
		t.Fatalf("List = %+v, want the created row", rows)
	}
	if rows[0].TechStack.Joined() != "Go, htmx" {
		t.Errorf("TechStack = %v", rows[0].TechStack)
	}
}

func TestUpdateChangesOnlyGivenColumns(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	created, err := d.Projects().Create(ctx, &models.Project{
		Title:       "Old",
		Description: "kept",
		TechStack:   models.TechStack{"Go"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := d.Projects().Update(ctx, created.ID.String(), map[string]any{
		"title":      "New",
		"tech_stack": "React, Node.js",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "New" {
		t.Errorf("Title = %q, want New", updated.Title)
	}
	if updated.Description != "kept" {
		t.Errorf("Description = %q, want kept", updated.Description)
	}
	if updated.TechStack.Joined() != "React, Node.js" {
		t.Errorf("TechStack = %v", updated.TechStack)
	}
}

func TestUpdateRejectsUnknownColumn(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	created, err := d.Projects().Create(ctx, &models.Project{Title: "P"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = d.Projects().Update(ctx, created.ID.String(), map[string]any{"owner": "me"})
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteThenListExcludesRow(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	keep, _ := d.Projects().Create(ctx, &models.Project{Title: "keep"})
	drop, _ := d.Projects().Create(ctx, &models.Project{Title: "drop"})

	if err := d.Projects().Delete(ctx, drop.ID.String()); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	rows, err := d.Projects().List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != keep.ID {
		t.Errorf("List = %+v, want only %s", rows, keep.ID)
	}
}

func TestMissingRowIsBackendError(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	missing := uuid.NewString()

	if err := d.Projects().Delete(ctx, missing); !errs.IsBackend(err) {
		t.Errorf("Delete of missing row: expected backend error, got %v", err)
	}
	if _, err := d.Projects().Update(ctx, missing, map[string]any{"title": "x"}); !errs.IsBackend(err) {
		t.Errorf("Update of missing row: expected backend error, got %v", err)
	}
}

func TestBlankIDFailsBeforeQuery(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	var statements int
	if err := d.DB().Callback().Update().Before("gorm:update").Register("count_updates", func(*gorm.DB) { statements++ }); err != nil {
		t.Fatalf("register callback: %v", err)
	}
	if err := d.DB().Callback().Delete().Before("gorm:delete").Register("count_deletes", func(*gorm.DB) { statements++ }); err != nil {
		t.Fatalf("register callback: %v", err)
	}

	for _, id := range []string{"", "   "} {
		if err := d.AboutSections().Delete(ctx, id); !errs.IsMissingID(err) {
			t.Errorf("Delete(%q): expected missing id, got %v", id, err)
		}
		if _, err := d.AboutSections().Update(ctx, id, map[string]any{"title": "x"}); !errs.IsMissingID(err) {
			t.Errorf("Update(%q): expected missing id, got %v", id, err)
		}
	}
	if statements != 0 {
		t.Errorf("%d statements reached the backend", statements)
	}
	if got := errs.StatusCode(errs.NewMissingIDError()); got != 400 {
		t.Errorf("missing id status = %d, want 400", got)
	}
}

func TestAboutSectionsOrderedByDisplayOrder(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	for _, order := range []int{3, 1, 2} {
		if _, err := d.AboutSections().Create(ctx, &models.AboutSection{
			Title:        fmt.Sprintf("section %d", order),
			DisplayOrder: intPtr(order),
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	rows, err := d.PublicAboutSections().List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for i, row := range rows {
		if row.DisplayOrder == nil || *row.DisplayOrder != i+1 {
			t.Fatalf("row %d has display_order %v, want %d", i, row.DisplayOrder, i+1)
		}
	}
}

func TestUpdateCoercesDisplayOrder(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	created, _ := d.AboutSections().Create(ctx, &models.AboutSection{Title: "A", DisplayOrder: intPtr(1)})

	updated, err := d.AboutSections().Update(ctx, created.ID.String(), map[string]any{"display_order": ""})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.DisplayOrder != nil {
		t.Errorf("display_order = %d, want null", *updated.DisplayOrder)
	}

	updated, err = d.AboutSections().Update(ctx, created.ID.String(), map[string]any{"display_order": float64(7)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.DisplayOrder == nil || *updated.DisplayOrder != 7 {
		t.Errorf("display_order = %v, want 7", updated.DisplayOrder)
	}
}

func TestGetOneReportsAbsenceAsNotFound(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	_, err := d.Hero().GetOne(ctx, map[string]any{"section": models.HeroSection})
	if !errs.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) || apiErr.Cause == nil {
		t.Error("not found error should carry its cause")
	}

	if err := d.DB().Create(&models.HeroContent{Section: models.HeroSection, Title: "Hi"}).Error; err != nil {
		t.Fatalf("seed hero: %v", err)
	}
	hero, err := d.Hero().GetOne(ctx, map[string]any{"section": models.HeroSection})
	if err != nil {
		t.Fatalf("GetOne failed: %v", err)
	}
	if hero.Title != "Hi" {
		t.Errorf("Title = %q", hero.Title)
	}
}

func TestCountAndCertificates(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"Go", "Postgres"} {
		if _, err := d.Skills().Create(ctx, &models.Skill{Skill: name}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	if n, err := d.Skills().Count(ctx); err != nil || n != 2 {
		t.Errorf("Count = %d, %v; want 2", n, err)
	}

	if err := d.DB().Create(&certificateRecord{CertID: "badge-1"}).Error; err != nil {
		t.Fatalf("seed certificate: %v", err)
	}
	certs, err := d.Certificates().List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(certs) != 1 || certs[0].CertID != "badge-1" || certs[0].ID != "1" {
		t.Errorf("certificates = %+v", certs)
	}
	if n, err := d.Certificates().Count(ctx); err != nil || n != 1 {
		t.Errorf("Count = %d, %v; want 1", n, err)
	}
}

func TestColumnMismatchReport(t *testing.T) {
	d := newTestDB(t)
	if err := d.DB().Exec("ALTER TABLE projects ADD COLUMN featured boolean").Error; err != nil {
		t.Fatalf("alter: %v", err)
	}

	reports, err := models.ColumnMismatchReport(d.DB())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	var found bool
	for _, r := range reports {
		if r.Table == "projects" {
			found = len(r.Unmapped) == 1 && r.Unmapped[0] == "featured"
		} else if len(r.Unmapped) != 0 || r.Missing {
			t.Errorf("unexpected drift in %s: %+v", r.Table, r)
		}
	}
	if !found {
		t.Errorf("projects drift not reported: %+v", reports)
	}
}
