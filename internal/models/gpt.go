package models

// Gpt is a row of the gpt table.
type Gpt struct {
	GptID        string   `db:"id"`
	UserID       string   `db:"user_id"`
	Name         string   `db:"name"`
	Image        int      `db:"image"`
	Description  string   `db:"description"`
	Goal         string   `db:"goal"`
	Temperature  float64  `db:"temperature"`
	Capabilities []string `db:"capabilities"` // text[]
	Limitations  []string `db:"limitations"`  // text[]
	IsPublic     bool     `db:"is_public"`
	AuditFields
}
