package models

// Event represents a gallery event. Date is free text as entered by admins.
// Featured events get larger display tiles; Images is an ordered gallery.
type Event struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Date        string        `json:"date"`
	Location    string        `json:"location"`
	Description string        `json:"description"`
	Category    EventCategory `json:"category"`
	Featured    bool          `json:"featured"`
	IsUpcoming  *bool         `json:"isUpcoming,omitempty"`
	LiveLink    *string       `json:"liveLink,omitempty"`
	Images      []string      `json:"images"`
	Order       int           `json:"order"`
}

// EventPatch carries a partial update; nil fields are left untouched.
type EventPatch struct {
	Title       *string        `json:"title,omitempty"`
	Date        *string        `json:"date,omitempty"`
	Location    *string        `json:"location,omitempty"`
	Description *string        `json:"description,omitempty"`
	Category    *EventCategory `json:"category,omitempty"`
	Featured    *bool          `json:"featured,omitempty"`
	IsUpcoming  *bool          `json:"isUpcoming,omitempty"`
	LiveLink    *string        `json:"liveLink,omitempty"`
	Images      *[]string      `json:"images,omitempty"`
	Order       *int           `json:"order,omitempty"`
}
