package domain

import "time"

// Account types as stored on the user document.
const (
	AccountTypeTutor   = "Tutor"
	AccountTypePartner = "Parceiro"
)

// Price tiers as stored on the establishment document.
const (
	PriceTierLow    = "Baixo"
	PriceTierMedium = "Médio"
	PriceTierHigh   = "Alto"
)

// Establishment represents a publicly visible pet-care listing.
// ReviewsCount and Rating are caches derived from Reviews and are never
// authored independently.
type Establishment struct {
	ID           string
	OwnerID      string
	Name         string
	Category     string
	Address      string
	Phone        string
	Hours        string
	Description  string
	PriceTier    string
	Services     []string
	Reviews      []Review
	ReviewsCount int
	Rating       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Review is a single end-user rating embedded in an establishment.
// ID is generated at insert time; documents written by the legacy client
// carry no ID and are matched by content instead.
type Review struct {
	ID      string
	Name    string
	Rating  int
	Comment string
	Date    string
}

// User is an account document. The password is stored in clear, as the
// legacy schema requires.
type User struct {
	ID          string
	FullName    string
	Email       string
	Password    string
	AccountType string
	CreatedAt   time.Time
}

// IsPartner reports whether the account may manage establishments.
func (u User) IsPartner() bool {
	return u.AccountType == AccountTypePartner
}
