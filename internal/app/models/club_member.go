package models

// ClubMember represents a general club member shown on the members page.
type ClubMember struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Image   *string  `json:"image,omitempty"`
	Socials *Socials `json:"socials,omitempty"`
	Order   int      `json:"order"`
}

// ClubMemberPatch carries a partial update; nil fields are left untouched.
type ClubMemberPatch struct {
	Name    *string  `json:"name,omitempty"`
	Role    *string  `json:"role,omitempty"`
	Image   *string  `json:"image,omitempty"`
	Socials *Socials `json:"socials,omitempty"`
	Order   *int     `json:"order,omitempty"`
}
