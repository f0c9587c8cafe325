package model

import "time"

// Project types observed in the portfolio content.
const (
	ProjectTypeProfessional = "Professional Project"
	ProjectTypeAcademic     = "Academic Project"
)

// Project is a portfolio project document. DisplayOrder drives ascending
// presentation order, independent of creation time.
type Project struct {
	ID           string    `json:"id" bson:"-"`
	Title        string    `json:"title" bson:"title"`
	Company      string    `json:"company" bson:"company"`
	Type         string    `json:"type" bson:"type"`
	Description  string    `json:"description" bson:"description"`
	Impact       []string  `json:"impact" bson:"impact"`
	Technologies []string  `json:"technologies" bson:"technologies"`
	Details      string    `json:"details" bson:"details"`
	Featured     bool      `json:"featured" bson:"featured"`
	DisplayOrder int       `json:"display_order" bson:"display_order"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// ProjectCreate holds the user-supplied fields of a new project.
// Identifier and timestamps are assigned by the repository.
type ProjectCreate struct {
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Type         string   `json:"type" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Impact       []string `json:"impact"`
	Technologies []string `json:"technologies"`
	Details      string   `json:"details"`
	Featured     *bool    `json:"featured"`
	DisplayOrder int      `json:"display_order"`
}

// ProjectUpdate is the partial-update variant: every field optional, only
// non-nil fields are written.
type ProjectUpdate struct {
	Title        *string   `json:"title,omitempty"`
	Company      *string   `json:"company,omitempty"`
	Type         *string   `json:"type,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Impact       *[]string `json:"impact,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	Details      *string   `json:"details,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
	DisplayOrder *int      `json:"display_order,omitempty"`
}

// Model constructs the full project record from the create input,
// applying the original defaults (featured defaults to true).
func (c ProjectCreate) Model() Project {
	featured := true
	if c.Featured != nil {
		featured = *c.Featured
	}
	return Project{
		Title:        c.Title,
		Company:      c.Company,
		Type:         c.Type,
		Description:  c.Description,
		Impact:       c.Impact,
		Technologies: c.Technologies,
		Details:      c.Details,
		Featured:     featured,
		DisplayOrder: c.DisplayOrder,
	}
}
