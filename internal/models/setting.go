package models

// Setting is a single per-owner configuration row.
type Setting struct {
	OwnerID string `db:"owner_id"`
	Key     string `db:"key"`
	Value   string `db:"value"`
	AuditFields
}
