package model

import "time"

// Visualization is a portfolio visualization record. Only active records
// are served by the listing operation, ascending by DisplayOrder.
type Visualization struct {
	ID           string         `json:"id" bson:"-"`
	Title        string         `json:"title" bson:"title"`
	Description  string         `json:"description" bson:"description"`
	Metrics      []string       `json:"metrics" bson:"metrics"`
	ChartType    string         `json:"chart_type" bson:"chart_type"`
	ChartData    map[string]any `json:"chart_data" bson:"chart_data"`
	IsActive     bool           `json:"is_active" bson:"is_active"`
	DisplayOrder int            `json:"display_order" bson:"display_order"`
	CreatedAt    time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" bson:"updated_at"`
}

// VisualizationCreate holds the user-supplied fields of a new
// visualization (active by default, like the original content).
type VisualizationCreate struct {
	Title        string         `json:"title" validate:"required"`
	Description  string         `json:"description"`
	Metrics      []string       `json:"metrics"`
	ChartType    string         `json:"chart_type" validate:"required"`
	ChartData    map[string]any `json:"chart_data"`
	IsActive     *bool          `json:"is_active"`
	DisplayOrder int            `json:"display_order"`
}

func (c VisualizationCreate) Model() Visualization {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}
	return Visualization{
		Title:        c.Title,
		Description:  c.Description,
		Metrics:      c.Metrics,
		ChartType:    c.ChartType,
		ChartData:    c.ChartData,
		IsActive:     active,
		DisplayOrder: c.DisplayOrder,
	}
}
