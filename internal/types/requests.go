package types

import "github.com/go-playground/validator/v10"

// ParseTextRequest represents a request to parse already-extracted resume text.
type ParseTextRequest struct {
	Text       string `json:"text" validate:"required,min=1"`
	SourceName string `json:"source_name,omitempty"`
	Store      bool   `json:"store,omitempty"`
}

// Validate validates the ParseTextRequest using the validator.
func (r *ParseTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
