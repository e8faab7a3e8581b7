package domain

// CategoryType tells whether a category classifies money coming in or going out.
type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

// IsValid reports whether t is a known category type.
func (t CategoryType) IsValid() bool {
	return t == CategoryIncome || t == CategoryExpense
}

// Category labels transactions for reporting and for obligation classification.
type Category struct {
	CategoryID string       `json:"categoryID"`
	OwnerID    string       `json:"ownerID"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	IsActive   bool         `json:"isActive"`
	AuditFields
}
