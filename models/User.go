package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"gorm.io/gorm"
)

// User is a pool participant. FullName doubles as the scoring and grouping
// key; there is no login surface.
type User struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	FullName  string    `gorm:"size:255;not null;unique" json:"full_name"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Picks []Pick `gorm:"constraint:OnDelete:CASCADE" json:"picks,omitempty"`
}

func (u *User) Prepare() {
	u.FullName = html.EscapeString(strings.TrimSpace(u.FullName))
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}

func (u *User) Validate() map[string]string {
	errorsMap := make(map[string]string)
	if u.FullName == "" {
		errorsMap["Required_full_name"] = "required full name"
	}
	return errorsMap
}

// SaveUser creates a new user.
func (u *User) SaveUser(db *gorm.DB) (*User, error) {
	if err := db.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// FindOrCreateByName returns the user with the given display name, creating
// it when missing. Picks imports create users ad hoc, matching the sheet.
func FindOrCreateByName(db *gorm.DB, fullName string) (*User, error) {
	u := User{FullName: fullName}
	u.Prepare()
	if msgs := u.Validate(); len(msgs) > 0 {
		return nil, errors.New("invalid user name")
	}
	if err := db.Where("full_name = ?", u.FullName).FirstOrCreate(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindAllUsers lists users by display name.
func FindAllUsers(db *gorm.DB) ([]User, error) {
	var users []User
	if err := db.Order("full_name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindUserByID retrieves one user.
func FindUserByID(db *gorm.DB, id uint) (*User, error) {
	var u User
	if err := db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
