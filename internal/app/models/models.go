package models

// EventCategory is the fixed enumeration of event categories.
type EventCategory string

const (
	CategoryMusic    EventCategory = "music"
	CategoryDance    EventCategory = "dance"
	CategoryArts     EventCategory = "arts"
	CategoryCultural EventCategory = "cultural"
)

// Socials holds optional social links for a person. A nil *Socials means the
// record has none; individual links may also be absent.
type Socials struct {
	Instagram *string `json:"instagram,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// Empty reports whether no social link is set.
func (s *Socials) Empty() bool {
	return s == nil || (s.Instagram == nil && s.LinkedIn == nil && s.Email == nil)
}
