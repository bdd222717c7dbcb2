package entity

// Access levels gate premium titles to subscribed members.
const (
	AccessNormal  = "NORMAL"
	AccessPremium = "PREMIUM"
)

type Book struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	ISBN            string  `json:"isbn"`
	Genre           string  `json:"genre,omitempty"`
	TotalCopies     int     `json:"totalCopies"`
	AvailableCopies int     `json:"availableCopies"`
	PublishedYear   int     `json:"publishedYear,omitempty"`
	Publisher       string  `json:"publisher,omitempty"`
	Description     string  `json:"description,omitempty"`
	MRP             float64 `json:"mrp,omitempty"`
	Tags            string  `json:"tags,omitempty"`
	AccessLevel     string  `json:"accessLevel,omitempty"`
}

// Available reports whether at least one copy is on the shelf. Display
// only; the backend is the authority on availability at issue time.
func (b Book) Available() bool {
	return b.AvailableCopies > 0
}
