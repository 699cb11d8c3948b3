package models

// Roles form a closed set: admins get full read/write, readonly accounts
// only see the board.
const (
	RoleAdmin    = "admin"
	RoleReadonly = "readonly"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:191;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:32;not null;default:readonly"`
}

// ValidRole reports whether r is one of the closed role set.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleReadonly
}
