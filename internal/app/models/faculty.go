package models

// FacultyMember represents a faculty advisor shown on the public faculty page.
// Order determines the ascending display sequence.
type FacultyMember struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Designation string  `json:"designation"`
	Department  string  `json:"department"`
	Role        string  `json:"role"`
	Image       *string `json:"image,omitempty"`
	Email       *string `json:"email,omitempty"`
	Order       int     `json:"order"`
}

// FacultyMemberPatch carries a partial update; nil fields are left untouched.
type FacultyMemberPatch struct {
	Name        *string `json:"name,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Department  *string `json:"department,omitempty"`
	Role        *string `json:"role,omitempty"`
	Image       *string `json:"image,omitempty"`
	Email       *string `json:"email,omitempty"`
	Order       *int    `json:"order,omitempty"`
}
