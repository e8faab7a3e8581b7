package domain

// Setting keys understood by the ledger. Values are stored as flat per-owner
// key/value rows and seeded with defaults on first read.
const (
	SettingBaseCurrency             = "base_currency"
	SettingBorrowingCategoryID      = "borrowing_category_id"
	SettingLendingCategoryID        = "lending_category_id"
	SettingBorrowingPaymentCategory = "borrowing_payment_category_id"
	SettingLendingPaymentCategory   = "lending_payment_category_id"
)

// Settings is the resolved per-owner configuration map.
type Settings map[string]string

// DefaultSettings are applied for any key absent on first read.
func DefaultSettings() Settings {
	return Settings{
		SettingBaseCurrency:             "USD",
		SettingBorrowingCategoryID:      "",
		SettingLendingCategoryID:        "",
		SettingBorrowingPaymentCategory: "",
		SettingLendingPaymentCategory:   "",
	}
}

// KnownSettingKey reports whether key is one the ledger understands.
func KnownSettingKey(key string) bool {
	switch key {
	case SettingBaseCurrency, SettingBorrowingCategoryID, SettingLendingCategoryID,
		SettingBorrowingPaymentCategory, SettingLendingPaymentCategory:
		return true
	}
	return false
}

// Classification is the category-to-obligation-type mapping resolved once per
// settings load, so the auto-classification hook does a map lookup instead of
// comparing raw setting strings per transaction.
type Classification struct {
	byCategory map[string]ObligationType
	paymentFor map[ObligationType]string
}

// NewClassification builds a Classification from resolved settings.
// Empty category ids are left unmapped.
func NewClassification(s Settings) Classification {
	c := Classification{
		byCategory: make(map[string]ObligationType, 2),
		paymentFor: make(map[ObligationType]string, 2),
	}
	if id := s[SettingBorrowingCategoryID]; id != "" {
		c.byCategory[id] = Borrowing
	}
	if id := s[SettingLendingCategoryID]; id != "" {
		c.byCategory[id] = Lending
	}
	if id := s[SettingBorrowingPaymentCategory]; id != "" {
		c.paymentFor[Borrowing] = id
	}
	if id := s[SettingLendingPaymentCategory]; id != "" {
		c.paymentFor[Lending] = id
	}
	return c
}

// Classify returns the obligation type configured for categoryID, if any.
func (c Classification) Classify(categoryID string) (ObligationType, bool) {
	t, ok := c.byCategory[categoryID]
	return t, ok
}

// PaymentCategory returns the category configured for payments against
// obligations of the given type, if any.
func (c Classification) PaymentCategory(t ObligationType) (string, bool) {
	id, ok := c.paymentFor[t]
	return id, ok
}
