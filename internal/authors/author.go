// Package authors manages author profiles and their portrait photos.
package authors

import (
	"net/url"
	"strings"
	"time"
)

// Author is a publication author. Photo holds the blob id of the portrait, or "" when none.
type Author struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Affiliation string    `json:"affiliation"`
	Biography   string    `json:"biography"`
	Photo       string    `json:"photo_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (a *Author) PhotoID() string      { return a.Photo }
func (a *Author) SetPhotoID(id string) { a.Photo = id }
func (a *Author) Touch(now time.Time)  { a.UpdatedAt = now }

// Merge copies the editable fields of from onto a.
func (a *Author) Merge(from *Author) {
	a.FirstName = from.FirstName
	a.LastName = from.LastName
	a.Email = from.Email
	a.Affiliation = from.Affiliation
	a.Biography = from.Biography
}

// Command carries the editable fields of an author submitted by a client.
type Command struct {
	FirstName   string
	LastName    string
	Email       string
	Affiliation string
	Biography   string
}

// CommandFromForm reads a Command from parsed form values.
func CommandFromForm(values url.Values) Command {
	return Command{
		FirstName:   strings.TrimSpace(values.Get("first_name")),
		LastName:    strings.TrimSpace(values.Get("last_name")),
		Email:       strings.TrimSpace(values.Get("email")),
		Affiliation: strings.TrimSpace(values.Get("affiliation")),
		Biography:   values.Get("biography"),
	}
}

func (c Command) validate() error {
	if c.FirstName == "" || c.LastName == "" {
		return ErrInvalidAuthor
	}
	return nil
}

func (c Command) author() *Author {
	return &Author{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Affiliation: c.Affiliation,
		Biography:   c.Biography,
	}
}
