package dto

import "github.com/devang/kalasangam/internal/app/models"

// Create requests mirror the records minus their store-assigned ids. Updates
// use the models' patch types directly since every field is optional there.

// CreateFacultyMemberRequest carries a new faculty record.
type CreateFacultyMemberRequest struct {
	Name        string  `json:"name" binding:"required"`
	Designation string  `json:"designation" binding:"required"`
	Department  string  `json:"department" binding:"required"`
	Role        string  `json:"role" binding:"required"`
	Image       *string `json:"image,omitempty"`
	Email       *string `json:"email,omitempty"`
	Order       int     `json:"order"`
}

// ToModel converts the request into a record without an id.
func (r *CreateFacultyMemberRequest) ToModel() *models.FacultyMember {
	return &models.FacultyMember{
		Name:        r.Name,
		Designation: r.Designation,
		Department:  r.Department,
		Role:        r.Role,
		Image:       r.Image,
		Email:       r.Email,
		Order:       r.Order,
	}
}

// CreateStudentMemberRequest carries a new student-body record.
type CreateStudentMemberRequest struct {
	Name       string          `json:"name" binding:"required"`
	Role       string          `json:"role" binding:"required"`
	Department string          `json:"department" binding:"required"`
	Tier       int             `json:"tier" binding:"required"`
	Image      *string         `json:"image,omitempty"`
	Socials    *models.Socials `json:"socials,omitempty"`
	Order      int             `json:"order"`
}

func (r *CreateStudentMemberRequest) ToModel() *models.StudentMember {
	return &models.StudentMember{
		Name:       r.Name,
		Role:       r.Role,
		Department: r.Department,
		Tier:       r.Tier,
		Image:      r.Image,
		Socials:    r.Socials,
		Order:      r.Order,
	}
}

// CreateClubMemberRequest carries a new club-member record.
type CreateClubMemberRequest struct {
	Name    string          `json:"name" binding:"required"`
	Role    string          `json:"role" binding:"required"`
	Image   *string         `json:"image,omitempty"`
	Socials *models.Socials `json:"socials,omitempty"`
	Order   int             `json:"order"`
}

func (r *CreateClubMemberRequest) ToModel() *models.ClubMember {
	return &models.ClubMember{
		Name:    r.Name,
		Role:    r.Role,
		Image:   r.Image,
		Socials: r.Socials,
		Order:   r.Order,
	}
}

// CreateEventRequest carries a new event record.
type CreateEventRequest struct {
	Title       string               `json:"title" binding:"required"`
	Date        string               `json:"date" binding:"required"`
	Location    string               `json:"location" binding:"required"`
	Description string               `json:"description" binding:"required"`
	Category    models.EventCategory `json:"category" binding:"required"`
	Featured    bool                 `json:"featured"`
	IsUpcoming  *bool                `json:"isUpcoming,omitempty"`
	LiveLink    *string              `json:"liveLink,omitempty"`
	Images      []string             `json:"images"`
	Order       int                  `json:"order"`
}

func (r *CreateEventRequest) ToModel() *models.Event {
	images := r.Images
	if images == nil {
		images = []string{}
	}
	return &models.Event{
		Title:       r.Title,
		Date:        r.Date,
		Location:    r.Location,
		Description: r.Description,
		Category:    r.Category,
		Featured:    r.Featured,
		IsUpcoming:  r.IsUpcoming,
		LiveLink:    r.LiveLink,
		Images:      images,
		Order:       r.Order,
	}
}

// CreateReportRequest carries a new report record.
type CreateReportRequest struct {
	Title string `json:"title" binding:"required"`
	Date  string `json:"date" binding:"required"`
	URL   string `json:"url" binding:"required"`
	Order int    `json:"order"`
}

func (r *CreateReportRequest) ToModel() *models.Report {
	return &models.Report{
		Title: r.Title,
		Date:  r.Date,
		URL:   r.URL,
		Order: r.Order,
	}
}

// CreatedResponse returns the id assigned by the store on creation.
type CreatedResponse struct {
	ID string `json:"id"`
}

// UploadResponse returns the public URL of an uploaded asset.
type UploadResponse struct {
	URL string `json:"url"`
}

// DashboardStats holds per-collection record counts for the admin dashboard.
type DashboardStats struct {
	Faculty     int64 `json:"faculty"`
	Students    int64 `json:"students"`
	ClubMembers int64 `json:"clubMembers"`
	Events      int64 `json:"events"`
	Reports     int64 `json:"reports"`
}
