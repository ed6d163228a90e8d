package handlers

import (
	"time"

	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

// UserResponse is a staff account without its password hash.
// swagger:model UserResponse
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ApplicationResponse
// swagger:model ApplicationResponse
type ApplicationResponse struct {
	ID                string    `json:"id"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	Whatsapp          string    `json:"whatsapp"`
	Age               string    `json:"age"`
	City              string    `json:"city"`
	HasCodeExperience bool      `json:"has_code_experience"`
	HasComputer       bool      `json:"has_computer"`
	HasInternet       bool      `json:"has_internet"`
	Motivation        string    `json:"motivation"`
	HoursPerWeek      int       `json:"hours_per_week"`
	HowDidYouKnow     string    `json:"how_did_you_know"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func newApplicationResponse(a *models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                a.ID.String(),
		FullName:          a.FullName,
		Email:             a.Email,
		Whatsapp:          a.Whatsapp,
		Age:               a.Age,
		City:              a.City,
		HasCodeExperience: a.HasCodeExperience,
		HasComputer:       a.HasComputer,
		HasInternet:       a.HasInternet,
		Motivation:        a.Motivation,
		HoursPerWeek:      a.HoursPerWeek,
		HowDidYouKnow:     a.HowDidYouKnow,
		Status:            string(a.Status),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// ContactResponse
// swagger:model ContactResponse
type ContactResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newContactResponse(c *models.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID.String(),
		FullName:  c.FullName,
		Email:     c.Email,
		Message:   c.Message,
		IsRead:    c.IsRead,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// QuoteResponse
// swagger:model QuoteResponse
type QuoteResponse struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	CompanyName *string   `json:"company_name"`
	Phone       string    `json:"phone"`
	ServiceType string    `json:"service_type"`
	Description string    `json:"description"`
	Budget      *float64  `json:"budget"`
	Timeline    *string   `json:"timeline"`
	Status      string    `json:"status"`
	AdminNotes  *string   `json:"admin_notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newQuoteResponse(q *models.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID.String(),
		FullName:    q.FullName,
		Email:       q.Email,
		CompanyName: q.CompanyName,
		Phone:       q.Phone,
		ServiceType: q.ServiceType,
		Description: q.Description,
		Budget:      q.Budget,
		Timeline:    q.Timeline,
		Status:      string(q.Status),
		AdminNotes:  q.AdminNotes,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

// TestimonialResponse
// swagger:model TestimonialResponse
type TestimonialResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Rating    float64   `json:"rating"`
	MediaURLs []string  `json:"media_urls"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTestimonialResponse(t *models.Testimonial) TestimonialResponse {
	media := []string(t.MediaURLs)
	if media == nil {
		media = []string{}
	}
	return TestimonialResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Role:      t.Role,
		Content:   t.Content,
		Rating:    t.Rating,
		MediaURLs: media,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// mapSlice converts a list of models into responses.
func mapSlice[M any, R any](items []M, conv func(*M) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, conv(&items[i]))
	}
	return out
}
