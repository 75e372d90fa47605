// Package users manages administrative user profiles and their photos in the admin store.
package users

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an administrative account profile.
type User struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Photo       string    `json:"photo_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) PhotoID() string      { return u.Photo }
func (u *User) SetPhotoID(id string) { u.Photo = id }
func (u *User) Touch(now time.Time)  { u.UpdatedAt = now }

func (u *User) Merge(from *User) {
	u.Username = from.Username
	u.Email = from.Email
	u.DisplayName = from.DisplayName
}

type Command struct {
	Username    string
	Email       string
	DisplayName string
}

func CommandFromForm(values url.Values) Command {
	return Command{
		Username:    strings.ToLower(strings.TrimSpace(values.Get("username"))),
		Email:       strings.TrimSpace(values.Get("email")),
		DisplayName: strings.TrimSpace(values.Get("display_name")),
	}
}

func (c Command) validate() error {
	if c.Username == "" {
		return ErrUsernameRequired
	}
	return nil
}

func (c Command) user() *User {
	return &User{
		Username:    c.Username,
		Email:       c.Email,
		DisplayName: c.DisplayName,
	}
}
