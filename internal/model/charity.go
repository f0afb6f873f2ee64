package model

// Charity is a donation campaign managed directly by staff. Charities
// do not go through the review workflow: deletion is a direct platform
// call with immediate local removal from the list.
type Charity struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"createdAt"`
}

func (c Charity) RecordID() int64 { return c.ID }

func (c Charity) RecordStatus() string {
	if c.Active {
		return "Active"
	}
	return "Inactive"
}

func (c Charity) RecordDate() string { return c.CreatedAt }
