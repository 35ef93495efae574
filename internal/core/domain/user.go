package domain

// User represents a user of the application in the domain.
type User struct {
	UserID       string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	AuditFields
}
