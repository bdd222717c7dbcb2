package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"lmsportal/internal/entity"
	"lmsportal/internal/session"
)

// BookFilter narrows catalog searches. Zero fields are omitted from
// the query string.
type BookFilter struct {
	Title     string
	Author    string
	Genre     string
	Available bool
}

func (f BookFilter) query() url.Values {
	q := url.Values{}
	if f.Title != "" {
		q.Set("title", f.Title)
	}
	if f.Author != "" {
		q.Set("author", f.Author)
	}
	if f.Genre != "" {
		q.Set("genre", f.Genre)
	}
	if f.Available {
		q.Set("available", "true")
	}
	return q
}

func (c *Client) SearchBooks(ctx context.Context, cred session.Credential, filter BookFilter) ([]entity.Book, error) {
	var out []entity.Book
	if err := c.get(ctx, cred, "/api/books/search", filter.query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBook(ctx context.Context, cred session.Credential, id int64) (*entity.Book, error) {
	var out entity.Book
	if err := c.get(ctx, cred, fmt.Sprintf("/api/books/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookInput is the create/update payload for staff book management.
type BookInput struct {
	Title           string  `json:"title" validate:"required,max=200"`
	Author          string  `json:"author" validate:"required,max=120"`
	ISBN            string  `json:"isbn,omitempty" validate:"omitempty,isbn"`
	Genre           string  `json:"genre,omitempty"`
	Publisher       string  `json:"publisher,omitempty"`
	TotalCopies     int     `json:"totalCopies,omitempty" validate:"gte=0"`
	AvailableCopies int     `json:"availableCopies,omitempty" validate:"gte=0"`
	MRP             float64 `json:"mrp,omitempty" validate:"gte=0"`
	Tags            string  `json:"tags,omitempty"`
	AccessLevel     string  `json:"accessLevel,omitempty" validate:"omitempty,oneof=NORMAL PREMIUM"`
}

func (c *Client) CreateBook(ctx context.Context, cred session.Credential, in BookInput) (*entity.Book, error) {
	var out entity.Book
	if err := c.post(ctx, cred, "/api/books", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBook(ctx context.Context, cred session.Credential, id int64, in BookInput) (*entity.Book, error) {
	var out entity.Book
	if err := c.put(ctx, cred, fmt.Sprintf("/api/books/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBook(ctx context.Context, cred session.Credential, id int64) error {
	return c.delete(ctx, cred, fmt.Sprintf("/api/books/%d", id), nil)
}

// BookWaitlist lists the queue for one book, staff view.
func (c *Client) BookWaitlist(ctx context.Context, cred session.Credential, bookID int64) ([]entity.WaitlistEntry, error) {
	var out []entity.WaitlistEntry
	if err := c.get(ctx, cred, "/api/waitlist/book/"+strconv.FormatInt(bookID, 10), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
