package models

// Report represents a downloadable club report (usually a PDF on the media host).
type Report struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

// ReportPatch carries a partial update; nil fields are left untouched.
type ReportPatch struct {
	Title *string `json:"title,omitempty"`
	Date  *string `json:"date,omitempty"`
	URL   *string `json:"url,omitempty"`
	Order *int    `json:"order,omitempty"`
}
