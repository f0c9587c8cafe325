package model

import "time"

// PersonalInfo is the single personal block of the profile document.
type PersonalInfo struct {
	Name        string `json:"name" bson:"name" validate:"required"`
	Title       string `json:"title" bson:"title" validate:"required"`
	Location    string `json:"location" bson:"location"`
	Email       string `json:"email" bson:"email" validate:"required,email"`
	Phone       string `json:"phone" bson:"phone"`
	LinkedIn    string `json:"linkedin" bson:"linkedin"`
	Summary     string `json:"summary" bson:"summary"`
	CurrentRole string `json:"current_role" bson:"current_role"`
}

// Skills groups the five named skill lists.
type Skills struct {
	Programming          []string `json:"programming" bson:"programming"`
	DataVisualization    []string `json:"data_visualization" bson:"data_visualization"`
	CloudTechnologies    []string `json:"cloud_technologies" bson:"cloud_technologies"`
	MachineLearning      []string `json:"machine_learning" bson:"machine_learning"`
	BusinessIntelligence []string `json:"business_intelligence" bson:"business_intelligence"`
}

type Experience struct {
	Company      string   `json:"company" bson:"company"`
	Position     string   `json:"position" bson:"position"`
	Duration     string   `json:"duration" bson:"duration"`
	Location     string   `json:"location" bson:"location"`
	Achievements []string `json:"achievements" bson:"achievements"`
	Technologies []string `json:"technologies" bson:"technologies"`
}

type Education struct {
	Degree          string   `json:"degree" bson:"degree"`
	Institution     string   `json:"institution" bson:"institution"`
	Location        string   `json:"location" bson:"location"`
	Duration        string   `json:"duration" bson:"duration"`
	RelevantCourses []string `json:"relevant_courses" bson:"relevant_courses"`
}

type Certification struct {
	Name         string `json:"name" bson:"name"`
	Issuer       string `json:"issuer" bson:"issuer"`
	Year         string `json:"year" bson:"year"`
	CredentialID string `json:"credential_id" bson:"credential_id"`
}

// Profile is the single portfolio profile document. At most one exists;
// the ID is the store identifier in hex form and is assigned at the
// repository boundary, never by callers.
type Profile struct {
	ID             string          `json:"id" bson:"-"`
	Personal       PersonalInfo    `json:"personal" bson:"personal"`
	Skills         Skills          `json:"skills" bson:"skills"`
	Experience     []Experience    `json:"experience" bson:"experience"`
	Education      []Education     `json:"education" bson:"education"`
	Certifications []Certification `json:"certifications" bson:"certifications"`
	CreatedAt      time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" bson:"updated_at"`
}

// ProfileUpdate carries a partial profile write. Only non-nil blocks are
// applied; timestamps are managed by the repository.
type ProfileUpdate struct {
	Personal       *PersonalInfo    `json:"personal,omitempty" validate:"omitempty"`
	Skills         *Skills          `json:"skills,omitempty"`
	Experience     *[]Experience    `json:"experience,omitempty"`
	Education      *[]Education     `json:"education,omitempty"`
	Certifications *[]Certification `json:"certifications,omitempty"`
}
