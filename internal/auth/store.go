package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/HardwareHub/HH-Backend/internal/db"
	"gorm.io/gorm/clause"
)

// SessionTTL is the lifetime of a login session and its cookie.
const SessionTTL = 24 * time.Hour

var ErrSessionExpired = errors.New("session expired")

// NormalizeEmail makes email uniqueness case-insensitive: every write and
// lookup goes through here.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func FindUserByEmail(email string) (*User, error) {
	var user User
	if err := db.DB.First(&user, "email = ?", NormalizeEmail(email)).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(id string) (*User, error) {
	var user User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(user *User) error {
	return db.DB.Create(user).Error
}

func SetResetToken(userID, digest string, expires time.Time) error {
	return db.DB.Model(&User{}).Where("id = ?", userID).Updates(map[string]any{
		"reset_token":        digest,
		"reset_token_expire": expires,
	}).Error
}

// FindUserByResetToken matches a pending reset digest whose expiry is still
// in the future.
func FindUserByResetToken(digest string) (*User, error) {
	var user User
	err := db.DB.First(&user, "reset_token = ? AND reset_token_expire > ?", digest, time.Now()).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ResetUserPassword swaps in the new hash and clears both reset fields in the
// same update, so a consumed token cannot be replayed.
func ResetUserPassword(userID, newHash string) error {
	return db.DB.Model(&User{}).Where("id = ?", userID).Updates(map[string]any{
		"hashed_password":    newHash,
		"reset_token":        nil,
		"reset_token_expire": nil,
	}).Error
}

func UpdatePassword(userID, newHash string) error {
	return db.DB.Model(&User{}).Where("id = ?", userID).
		Update("hashed_password", newHash).Error
}

// ReplaceSession issues a fresh opaque session token for the user. The upsert
// on user_id means a second login replaces the first session instead of
// stacking next to it, with no delete-then-insert window in between.
func ReplaceSession(userID string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	session := Session{
		SessionToken: token,
		UserID:       userID,
		ExpiresAt:    time.Now().Add(SessionTTL),
		CreatedAt:    time.Now(),
	}
	err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"session_token", "expires_at", "created_at"}),
	}).Create(&session).Error
	if err != nil {
		return "", err
	}
	return token, nil
}

func DeleteSessionsForUser(userID string) error {
	return db.DB.Where("user_id = ?", userID).Delete(&Session{}).Error
}

// FindSessionUser resolves a session token to its owning user. Expired rows
// are not purged here, just treated as invalid.
func FindSessionUser(token string) (*User, error) {
	var session Session
	if err := db.DB.First(&session, "session_token = ?", token).Error; err != nil {
		return nil, err
	}
	if session.ExpiresAt.Before(time.Now()) {
		return nil, ErrSessionExpired
	}
	return FindUserByID(session.UserID)
}
