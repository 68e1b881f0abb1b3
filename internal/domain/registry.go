package domain

// RegistryEntry is a category or payment mode: a small piece of descriptive
// metadata keyed by a slug identifier. Identity is the ID, which for
// user-created entries is derived from the name (lowercase, whitespace runs
// replaced with single hyphens).
type RegistryEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

// DefaultCategories returns the seed category set. These entries exist from
// startup and are protected from deletion.
func DefaultCategories() []RegistryEntry {
	return []RegistryEntry{
		{ID: "transport", Name: "Transport", Description: "Flights, trains, buses, taxis, car rentals"},
		{ID: "accommodation", Name: "Accommodation", Description: "Hotels, hostels, vacation rentals"},
		{ID: "meals", Name: "Meals", Description: "Restaurants, cafes, food delivery, groceries"},
		{ID: "entertainment", Name: "Entertainment", Description: "Tours, activities, attractions, shows"},
		{ID: "shopping", Name: "Shopping", Description: "Souvenirs, clothes, personal items"},
		{ID: "other", Name: "Other", Description: "Miscellaneous expenses"},
	}
}

// DefaultPaymentModes returns the seed payment-mode set, protected from
// deletion like the default categories.
func DefaultPaymentModes() []RegistryEntry {
	return []RegistryEntry{
		{ID: "cash", Name: "Cash", Description: "Physical cash payments", Icon: "Banknote"},
		{ID: "credit-card", Name: "Credit Card", Description: "Credit card transactions", Icon: "CreditCard"},
		{ID: "debit-card", Name: "Debit Card", Description: "Debit card transactions", Icon: "CreditCard"},
		{ID: "bank-transfer", Name: "Bank Transfer", Description: "Direct bank transfers", Icon: "ArrowLeftRight"},
		{ID: "digital-wallet", Name: "Digital Wallet", Description: "PayPal, Apple Pay, Google Pay, etc.", Icon: "Smartphone"},
		{ID: "other", Name: "Other", Description: "Other payment methods", Icon: "MoreHorizontal"},
	}
}
