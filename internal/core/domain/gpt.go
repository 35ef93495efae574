package domain

import "github.com/SscSPs/finance_assistant_app/internal/apperrors"

const (
	GptImageMin       = 0
	GptImageMax       = 21
	GptMaxListEntries = 10
)

// Gpt is a user-defined assistant configuration.
type Gpt struct {
	GptID        string   `json:"id"`
	OwnerID      string   `json:"user_id"`
	Name         string   `json:"name"`
	Image        int      `json:"image"`
	Description  string   `json:"description"`
	Goal         string   `json:"goal"`
	Temperature  float64  `json:"temperature"`
	Capabilities []string `json:"capabilities"`
	Limitations  []string `json:"limitations"`
	IsPublic     bool     `json:"is_public"`
	AuditFields
}

// IsVisibleTo reports whether userID may read the configuration.
func (g Gpt) IsVisibleTo(userID string) bool {
	return g.IsPublic || g.OwnerID == userID
}

// Validate checks field bounds.
func (g Gpt) Validate() error {
	switch {
	case g.Name == "" || len([]rune(g.Name)) > 100:
		return apperrors.NewValidationError("name must be between 1 and 100 characters")
	case g.Image < GptImageMin || g.Image > GptImageMax:
		return apperrors.NewValidationError("image must be between %d and %d", GptImageMin, GptImageMax)
	case g.Description == "" || len([]rune(g.Description)) > 500:
		return apperrors.NewValidationError("description must be between 1 and 500 characters")
	case g.Goal == "" || len([]rune(g.Goal)) > 200:
		return apperrors.NewValidationError("goal must be between 1 and 200 characters")
	case g.Temperature < 0 || g.Temperature > 1:
		return apperrors.NewValidationError("temperature must be between 0 and 1")
	}
	if err := validateEntries("capabilities", g.Capabilities); err != nil {
		return err
	}
	return validateEntries("limitations", g.Limitations)
}

func validateEntries(field string, entries []string) error {
	if len(entries) < 1 || len(entries) > GptMaxListEntries {
		return apperrors.NewValidationError("%s must have between 1 and %d items", field, GptMaxListEntries)
	}
	return nil
}
