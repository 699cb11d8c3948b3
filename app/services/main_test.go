package services

import (
	"fmt"
	"testing"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/db"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/models"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newTestDB gives each test its own in-memory sqlite database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := db.Connect(db.Config{Driver: "sqlite", DBName: dsn})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Ticket{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return gdb
}

func newTicketService(t *testing.T) (*TicketService, *repo.TicketRepository) {
	t.Helper()
	r := repo.NewTicketRepository(newTestDB(t))
	return NewTicketService(r), r
}

func newUserService(t *testing.T) (*UserService, *repo.UserRepository) {
	t.Helper()
	r := repo.NewUserRepository(newTestDB(t))
	return NewUserService(r), r
}
