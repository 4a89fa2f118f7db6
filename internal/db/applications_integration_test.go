//go:build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/mikhail/talenthub/internal/lifecycle"
	"github.com/mikhail/talenthub/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := Connect(context.Background(), dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}

	// Clean up test data before each test
	ctx := context.Background()
	_, _ = db.pool.Exec(ctx, "DELETE FROM applications WHERE talent_id IN (SELECT id FROM talents WHERE name LIKE 'it-talent-%')")
	_, _ = db.pool.Exec(ctx, "DELETE FROM talents WHERE name LIKE 'it-talent-%'")
	_, _ = db.pool.Exec(ctx, "DELETE FROM jobs WHERE title LIKE 'it-job-%'")

	return db
}

func createTestPair(t *testing.T, db *DB) (*types.Talent, *types.Job) {
	t.Helper()
	ctx := context.Background()

	talent, err := db.CreateTalent(ctx, &TalentCreateInput{
		Name:        "it-talent-" + time.Now().Format("150405.000000"),
		Categories:  []string{"ITO"},
		Skills:      []string{"Go", "PostgreSQL"},
		Experience:  types.LevelSenior,
		Engagements: []string{"FULL_TIME"},
	})
	if err != nil {
		t.Fatalf("CreateTalent failed: %v", err)
	}

	job, err := db.CreateJob(ctx, &JobCreateInput{
		Title:      "it-job-" + time.Now().Format("150405.000000"),
		Category:   types.CategoryITO,
		Skills:     []string{"Go"},
		Engagement: types.EngagementFullTime,
		Experience: types.LevelSenior,
	})
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}

	return talent, job
}

func TestIntegration_Application_UniquePair(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	talent, job := createTestPair(t, db)

	breakdown := types.MatchBreakdown{SkillOverlap: 100, CategoryMatch: 100, ExperienceMatch: 100, EngagementMatch: 100, Total: 100}
	app, err := db.CreateApplication(ctx, job.ID, talent.ID, 100, breakdown)
	if err != nil {
		t.Fatalf("CreateApplication failed: %v", err)
	}
	if app.Status != types.ApplicationNew {
		t.Errorf("Status = %q, want NEW", app.Status)
	}

	// Second application for the same pair violates the uniqueness invariant.
	_, err = db.CreateApplication(ctx, job.ID, talent.ID, 100, breakdown)
	if err == nil {
		t.Fatal("Expected ErrApplicationExists on duplicate pair")
	}
	if _, ok := err.(*ErrApplicationExists); !ok {
		t.Errorf("Error type = %T, want *ErrApplicationExists", err)
	}
}

func TestIntegration_Application_TransitionGuard(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	talent, job := createTestPair(t, db)

	app, err := db.CreateApplication(ctx, job.ID, talent.ID, 80, types.MatchBreakdown{Total: 80})
	if err != nil {
		t.Fatalf("CreateApplication failed: %v", err)
	}

	next, _, err := lifecycle.Transition(*app, lifecycle.ActionShortlist, "looks good", time.Now().UTC())
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}

	saved, err := db.SaveTransition(ctx, app.ID, lifecycle.AllowedFrom(lifecycle.ActionShortlist), &next)
	if err != nil {
		t.Fatalf("SaveTransition failed: %v", err)
	}
	if saved.Status != types.ApplicationShortlisted {
		t.Errorf("Status = %q, want SHORTLISTED", saved.Status)
	}
	if saved.ShortlistedAt == nil {
		t.Error("ShortlistedAt should be set")
	}

	// Replaying the same transition must fail the status guard: the row is
	// no longer in any of the expected prior statuses.
	_, err = db.SaveTransition(ctx, app.ID, lifecycle.AllowedFrom(lifecycle.ActionShortlist), &next)
	if err == nil {
		t.Fatal("Expected ErrStatusConflict on replayed transition")
	}
	if _, ok := err.(*ErrStatusConflict); !ok {
		t.Errorf("Error type = %T, want *ErrStatusConflict", err)
	}
}

func TestIntegration_Application_TimestampSetOnce(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	talent, job := createTestPair(t, db)

	app, err := db.CreateApplication(ctx, job.ID, talent.ID, 65, types.MatchBreakdown{Total: 65})
	if err != nil {
		t.Fatalf("CreateApplication failed: %v", err)
	}

	shortlistTime := time.Now().UTC().Truncate(time.Millisecond)
	shortlisted, _, err := lifecycle.Transition(*app, lifecycle.ActionShortlist, "", shortlistTime)
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	saved, err := db.SaveTransition(ctx, app.ID, lifecycle.AllowedFrom(lifecycle.ActionShortlist), &shortlisted)
	if err != nil {
		t.Fatalf("SaveTransition failed: %v", err)
	}

	hired, _, err := lifecycle.Transition(*saved, lifecycle.ActionHire, "", time.Now().UTC())
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	final, err := db.SaveTransition(ctx, app.ID, lifecycle.AllowedFrom(lifecycle.ActionHire), &hired)
	if err != nil {
		t.Fatalf("SaveTransition failed: %v", err)
	}

	if final.HiredAt == nil {
		t.Fatal("HiredAt should be set")
	}
	if final.ShortlistedAt == nil || !final.ShortlistedAt.Equal(shortlistTime) {
		t.Errorf("ShortlistedAt = %v, want unchanged %v", final.ShortlistedAt, shortlistTime)
	}
}

func TestIntegration_AuditLog_AppendAndList(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	talent, job := createTestPair(t, db)

	app, err := db.CreateApplication(ctx, job.ID, talent.ID, 50, types.MatchBreakdown{Total: 50})
	if err != nil {
		t.Fatalf("CreateApplication failed: %v", err)
	}

	next, event, err := lifecycle.Transition(*app, lifecycle.ActionReject, "no fit", time.Now().UTC())
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if _, err := db.SaveTransition(ctx, app.ID, lifecycle.AllowedFrom(lifecycle.ActionReject), &next); err != nil {
		t.Fatalf("SaveTransition failed: %v", err)
	}

	if err := db.InsertAuditEvent(ctx, nil, event); err != nil {
		t.Fatalf("InsertAuditEvent failed: %v", err)
	}

	logs, err := db.ListAuditEvents(ctx, "APPLICATION", app.ID.String(), 10)
	if err != nil {
		t.Fatalf("ListAuditEvents failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("len(logs) = %d, want 1", len(logs))
	}
	if logs[0].Action != "REJECT_APPLICATION" {
		t.Errorf("Action = %q, want REJECT_APPLICATION", logs[0].Action)
	}
	if logs[0].Metadata["note"] != "no fit" {
		t.Errorf("Metadata note = %v, want 'no fit'", logs[0].Metadata["note"])
	}
}
