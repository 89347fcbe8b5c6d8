package domain

// Client holds a person's identity data. It is a plain value: copies are
// independent and nothing in the core mutates one after construction.
type Client struct {
	Name       string
	NationalID string
	Address    string
	Phone      string
}
