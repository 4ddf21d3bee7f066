package auth

import "time"

type User struct {
	ID               string     `gorm:"primaryKey" json:"id"`
	Name             string     `gorm:"not null" json:"name"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword   string     `json:"-"`
	Phone            string     `json:"phone,omitempty"`
	Role             string     `gorm:"default:'user'" json:"role"`
	ResetToken       *string    `json:"-"`
	ResetTokenExpire *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
}

// Session is one active cookie login. UserID carries a unique index, so a
// user has at most one live session: logging in again replaces it.
type Session struct {
	SessionToken string    `gorm:"primaryKey" json:"-"`
	UserID       string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt    time.Time `gorm:"not null"`
	CreatedAt    time.Time
}

func (User) TableName() string    { return "app_auth.users" }
func (Session) TableName() string { return "app_auth.sessions" }

// PublicUser is the subset of User safe to return in API responses.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
