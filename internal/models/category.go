package models

// Category is the persistence representation of a transaction category.
type Category struct {
	CategoryID string `db:"category_id"`
	OwnerID    string `db:"owner_id"`
	Name       string `db:"name"`
	Type       string `db:"type"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
