package archive

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pafa-project/pafa/pkg/types"
)

// Submission carries the fields of the public submission form. Required
// fields and length limits follow the submission-path policy; other insertion
// paths (import) are not subject to them.
type Submission struct {
	Title           string `validate:"required,max=200"`
	Category        string `validate:"required"`
	URL             string `validate:"required,httpurl"`
	Platform        string `validate:"required"`
	Description     string `validate:"required,min=20,max=2000"`
	IncidentDate    string
	Location        string
	Agency          string
	Source          string
	ContentWarnings []string

	// Agree records the explicit submission-terms checkbox.
	Agree bool `validate:"required"`
}

// ValidationError collects every human-readable violation of the submission
// rules. All messages are reported together; nothing is persisted when any
// rule fails.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("httpurl", validateHTTPURL); err != nil {
		panic(err)
	}
	return v
}

// validateHTTPURL accepts values that parse as absolute http or https URLs.
func validateHTTPURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// normalized returns a copy with surrounding whitespace stripped from every
// text field, matching how the form reads its inputs.
func (sub Submission) normalized() Submission {
	sub.Title = strings.TrimSpace(sub.Title)
	sub.Category = strings.TrimSpace(sub.Category)
	sub.URL = strings.TrimSpace(sub.URL)
	sub.Platform = strings.TrimSpace(sub.Platform)
	sub.Description = strings.TrimSpace(sub.Description)
	sub.IncidentDate = strings.TrimSpace(sub.IncidentDate)
	sub.Location = strings.TrimSpace(sub.Location)
	sub.Agency = strings.TrimSpace(sub.Agency)
	sub.Source = strings.TrimSpace(sub.Source)
	return sub
}

// Validate checks the submission rules and returns every violation as a
// human-readable message. An empty result means the submission is acceptable.
func (sub Submission) Validate() []string {
	err := validate.Struct(sub.normalized())
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, submissionMessage(fe))
	}
	return messages
}

// submissionMessage maps a field violation to the message shown to the
// submitter.
func submissionMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Title":
		if fe.Tag() == "max" {
			return "Title must be 200 characters or less."
		}
		return "Title is required."
	case "Category":
		return "Category is required."
	case "URL":
		if fe.Tag() == "httpurl" {
			return "Footage URL does not appear to be a valid URL. Include http:// or https://."
		}
		return "Footage URL is required."
	case "Platform":
		return "Video Platform is required."
	case "Description":
		if fe.Tag() == "max" {
			return "Description must be 2000 characters or less."
		}
		return "Description is required and must be at least 20 characters."
	case "Agree":
		return "You must confirm the submission terms."
	}
	return fe.Error()
}

// Submit validates the submission and, when acceptable, stores it as a new
// entry. Validation failures come back as *ValidationError; a persistence
// failure wraps ErrStorage and leaves the archive usable for a retry.
func (s *Store) Submit(sub Submission) (types.Entry, error) {
	sub = sub.normalized()
	if messages := sub.Validate(); len(messages) > 0 {
		return types.Entry{}, &ValidationError{Messages: messages}
	}

	warnings := sub.ContentWarnings
	if warnings == nil {
		warnings = []string{}
	}

	entry := types.Entry{
		Title:           sub.Title,
		Category:        sub.Category,
		URL:             sub.URL,
		Platform:        sub.Platform,
		Description:     sub.Description,
		IncidentDate:    optionalString(sub.IncidentDate),
		Location:        optionalString(sub.Location),
		Agency:          optionalString(sub.Agency),
		Source:          optionalString(sub.Source),
		ContentWarnings: warnings,
	}
	return s.Add(entry)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
