package repo

import (
	"fmt"
	"testing"
	"time"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/db"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/models"

	"github.com/google/uuid"
)

func newTicketRepo(t *testing.T) *TicketRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := db.Connect(db.Config{Driver: "sqlite", DBName: dsn})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.Ticket{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewTicketRepository(gdb)
}

func seed(t *testing.T, r *TicketRepository, titles ...string) {
	t.Helper()
	for _, title := range titles {
		ticket := models.Ticket{Title: title, Priority: models.PriorityLow, Status: models.StatusOpen, CreatedAt: time.Now()}
		if err := r.Create(&ticket); err != nil {
			t.Fatalf("seed %q: %v", title, err)
		}
	}
}

func TestSearchByTitleCaseInsensitive(t *testing.T) {
	r := newTicketRepo(t)
	seed(t, r, "Login Failure", "Application Crash", "login timeout", "UI Glitch")

	got, err := r.SearchByTitle("LOGIN")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(got), got)
	}
	for _, ticket := range got {
		if ticket.Title != "Login Failure" && ticket.Title != "login timeout" {
			t.Errorf("unexpected match %q", ticket.Title)
		}
	}

	none, err := r.SearchByTitle("database")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d matches, want 0", len(none))
	}
}

func TestUpdateStatusRowsAffected(t *testing.T) {
	r := newTicketRepo(t)
	seed(t, r, "Login Failure")

	rows, err := r.UpdateStatus(1, models.StatusResolved)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if rows != 1 {
		t.Errorf("rows = %d, want 1", rows)
	}

	rows, err = r.UpdateStatus(999, models.StatusResolved)
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if rows != 0 {
		t.Errorf("rows = %d, want 0 for missing ticket", rows)
	}
}

func TestAllOrderedByID(t *testing.T) {
	r := newTicketRepo(t)
	seed(t, r, "c", "a", "b")

	got, err := r.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ID > got[i].ID {
			t.Fatal("not ordered by id")
		}
	}
}
