// Package publications manages publication records and their PDF manuscripts.
package publications

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Publication is a paper or book. File holds the blob id of the manuscript, or
// "" when none; PageCount is read from the manuscript when one is uploaded.
type Publication struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Abstract  string    `json:"abstract"`
	Year      int       `json:"year"`
	DOI       string    `json:"doi"`
	AuthorID  *int64    `json:"author_id,omitempty"`
	PageCount *int      `json:"page_count,omitempty"`
	File      string    `json:"file_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Publication) FileID() string      { return p.File }
func (p *Publication) SetFileID(id string) { p.File = id }
func (p *Publication) Touch(now time.Time) { p.UpdatedAt = now }

// Merge copies the editable fields of from onto p, PageCount included. A nil
// PageCount on from clears the stored count.
func (p *Publication) Merge(from *Publication) {
	p.Title = from.Title
	p.Abstract = from.Abstract
	p.Year = from.Year
	p.DOI = from.DOI
	p.AuthorID = from.AuthorID
	p.PageCount = from.PageCount
}

// Command carries the editable fields of a publication submitted by a client.
type Command struct {
	Title    string
	Abstract string
	Year     int
	DOI      string
	AuthorID *int64
}

// CommandFromForm reads a Command from parsed form values.
func CommandFromForm(values url.Values) (Command, error) {
	cmd := Command{
		Title:    strings.TrimSpace(values.Get("title")),
		Abstract: values.Get("abstract"),
		DOI:      strings.ToLower(strings.TrimSpace(values.Get("doi"))),
	}

	if v := values.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return cmd, fmt.Errorf("%w: year %q", ErrInvalidPublication, v)
		}
		cmd.Year = year
	}

	if v := values.Get("author_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cmd, fmt.Errorf("%w: author_id %q", ErrInvalidPublication, v)
		}
		cmd.AuthorID = &id
	}

	return cmd, nil
}

func (c Command) validate() error {
	if c.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidPublication)
	}
	if c.Year < 0 || c.Year > time.Now().Year()+1 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidPublication, c.Year)
	}
	return nil
}

func (c Command) publication() *Publication {
	return &Publication{
		Title:    c.Title,
		Abstract: c.Abstract,
		Year:     c.Year,
		DOI:      c.DOI,
		AuthorID: c.AuthorID,
	}
}
