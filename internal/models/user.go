package models

// User is a row of the users table.
type User struct {
	UserID       string `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Name         string `db:"name"`
	AuditFields
}
