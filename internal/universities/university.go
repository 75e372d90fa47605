// Package universities manages university records with a full-size photo and
// an independent small photo used in listings.
package universities

import (
	"net/url"
	"strings"
	"time"
)

// University is an academic institution. Photo and Small hold blob ids, or "" when absent.
type University struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	Website   string    `json:"website"`
	Photo     string    `json:"photo_id,omitempty"`
	Small     string    `json:"small_photo_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *University) PhotoID() string           { return u.Photo }
func (u *University) SetPhotoID(id string)      { u.Photo = id }
func (u *University) SmallPhotoID() string      { return u.Small }
func (u *University) SetSmallPhotoID(id string) { u.Small = id }
func (u *University) Touch(now time.Time)       { u.UpdatedAt = now }

// Merge copies the editable fields of from onto u.
func (u *University) Merge(from *University) {
	u.Name = from.Name
	u.Country = from.Country
	u.City = from.City
	u.Website = from.Website
}

// Command carries the editable fields of a university submitted by a client.
type Command struct {
	Name    string
	Country string
	City    string
	Website string
}

// CommandFromForm reads a Command from parsed form values.
func CommandFromForm(values url.Values) Command {
	return Command{
		Name:    strings.TrimSpace(values.Get("name")),
		Country: strings.ToUpper(strings.TrimSpace(values.Get("country"))),
		City:    strings.TrimSpace(values.Get("city")),
		Website: strings.TrimSpace(values.Get("website")),
	}
}

func (c Command) validate() error {
	if c.Name == "" {
		return ErrNameRequired
	}
	return nil
}

func (c Command) university() *University {
	return &University{
		Name:    c.Name,
		Country: c.Country,
		City:    c.City,
		Website: c.Website,
	}
}
