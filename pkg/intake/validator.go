// Package intake is the gatekeeper for consultation submissions. It enforces
// the submission schema before anything reaches storage and reports every
// violated field at once rather than failing on the first.
package intake

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wandergate/catalog-api/pkg/models"
)

// FieldError describes a single violated field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries all violations found in a submission
type ValidationError struct {
	Fields []FieldError
}

// Error joins the per-field messages into the text surfaced to the client
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// Validator validates inbound consultation submissions
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the submission rules registered
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// The stock email rule admits dotless domains; consultation emails must
	// have a dot-containing domain.
	_ = v.RegisterValidation("contains_dot_domain", func(fl validator.FieldLevel) bool {
		email := fl.Field().String()
		at := strings.LastIndex(email, "@")
		if at < 0 {
			return false
		}
		domain := email[at+1:]
		return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
	})

	return &Validator{validate: v}
}

// Validate checks a submission and returns the normalized record on success.
// On failure it returns a *ValidationError listing every violated field.
// TravelDate and AdditionalInfo are free-form and pass through unvalidated;
// absent values stay as empty strings rather than leaking nulls into storage.
func (v *Validator) Validate(sub models.ConsultationSubmission) (*models.ConsultationSubmission, error) {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.Destination = strings.TrimSpace(sub.Destination)

	if err := v.validate.Struct(sub); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, err
		}

		out := &ValidationError{}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{
				Field:   fieldName(fe.Field()),
				Message: fieldMessage(fe),
			})
		}
		return nil, out
	}

	return &sub, nil
}

// fieldName maps struct field names to their JSON names
func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Phone":
		return "phone"
	case "Destination":
		return "destination"
	case "TravelDate":
		return "travelDate"
	case "AdditionalInfo":
		return "additionalInfo"
	default:
		return structField
	}
}

// fieldMessage renders the human-readable message for a violation
func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "Name must be at least 2 characters"
	case "Email":
		return "Invalid email address"
	case "Phone":
		return "Phone number must be at least 6 characters"
	case "Destination":
		return "Please select a destination"
	default:
		return fieldName(fe.Field()) + " is invalid"
	}
}
