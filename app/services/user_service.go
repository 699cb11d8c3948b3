package services

import (
	"errors"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/models"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidRole        = errors.New("invalid role")
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// EnsureAdmin seeds a default admin account if the username is absent.
func (s *UserService) EnsureAdmin(username, password string) error {
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{Username: username, PasswordHash: string(hash), Role: models.RoleAdmin})
}

// CreateUser hashes the password and inserts the account. The UNIQUE
// constraint on username is the arbiter for duplicates, so two
// concurrent adds of the same name cannot both win.
func (s *UserService) CreateUser(username, password, role string) error {
	if !models.ValidRole(role) {
		return ErrInvalidRole
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	err = s.users.Create(&models.User{Username: username, PasswordHash: string(hash), Role: role})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUserExists
	}
	return err
}

// DeleteUser removes the account. Unknown usernames delete zero rows and
// succeed.
func (s *UserService) DeleteUser(username string) error {
	return s.users.DeleteByUsername(username)
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.users.All()
}

// ValidateCredentials resolves username+password to an account. A missing
// user and a wrong password both come back as ErrInvalidCredentials so
// the login page cannot leak which half was wrong.
func (s *UserService) ValidateCredentials(username, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
