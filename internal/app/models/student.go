package models

// StudentMember represents a student-body member. Tier (1 highest) groups the
// organizational levels; display is grouped by tier then ordered by Order.
type StudentMember struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Department string   `json:"department"`
	Tier       int      `json:"tier"`
	Image      *string  `json:"image,omitempty"`
	Socials    *Socials `json:"socials,omitempty"`
	Order      int      `json:"order"`
}

// StudentMemberPatch carries a partial update; nil fields are left untouched.
type StudentMemberPatch struct {
	Name       *string  `json:"name,omitempty"`
	Role       *string  `json:"role,omitempty"`
	Department *string  `json:"department,omitempty"`
	Tier       *int     `json:"tier,omitempty"`
	Image      *string  `json:"image,omitempty"`
	Socials    *Socials `json:"socials,omitempty"`
	Order      *int     `json:"order,omitempty"`
}
