package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/wallet-api/internal/domain"
)

// SignUpRequest defines the payload for the sign up endpoint. The tags only
// bound field sizes; empty and malformed values reach the domain validators so
// they can be reported as outcomes.
type SignUpRequest struct {
	Name            string `json:"name"             validate:"max=100"`
	Surname         string `json:"surname"          validate:"max=100"`
	Email           string `json:"email"            validate:"max=254"`
	EmailConfirm    string `json:"email_confirm"    validate:"max=254"`
	Password        string `json:"password"         validate:"max=256"`
	PasswordConfirm string `json:"password_confirm" validate:"max=256"`
}

func (r SignUpRequest) toDomain() domain.UserSignUp {
	return domain.UserSignUp{
		Name:            r.Name,
		Surname:         r.Surname,
		Email:           r.Email,
		EmailConfirm:    r.EmailConfirm,
		Password:        r.Password,
		PasswordConfirm: r.PasswordConfirm,
	}
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"max=254"`
	Password string `json:"password" validate:"max=256"`
}

func (r LoginRequest) toDomain() domain.UserLogIn {
	return domain.UserLogIn{Email: r.Email, Password: r.Password}
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Token is the JWT used for API authorization
	Token string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires
	ExpiresAt string `json:"expires_at"`
}

// CardRequest defines the payload for adding or replacing a card.
// Type is an optional hint that must agree with the detected type.
type CardRequest struct {
	OwnerName       string `json:"owner_name"       validate:"max=100"`
	OwnerSurname    string `json:"owner_surname"    validate:"max=100"`
	Number          string `json:"number"           validate:"max=32"`
	ExpirationMonth string `json:"expiration_month" validate:"max=32"`
	ExpirationYear  string `json:"expiration_year"  validate:"max=32"`
	CVC             string `json:"cvc"              validate:"max=32"`
	Type            string `json:"type,omitempty"   validate:"max=32"`
}

func (r CardRequest) toDomain() domain.CardInput {
	in := domain.CardInput{
		OwnerName:       r.OwnerName,
		OwnerSurname:    r.OwnerSurname,
		Number:          r.Number,
		ExpirationMonth: r.ExpirationMonth,
		ExpirationYear:  r.ExpirationYear,
		CVC:             r.CVC,
	}
	// An unrecognized hint is kept as is so it disagrees with any detected type.
	in.Type, _ = domain.ParseCardType(r.Type)
	return in
}

// DetectCardTypeRequest carries a partially or fully typed card number.
type DetectCardTypeRequest struct {
	Number string `json:"number" validate:"max=32"`
}

// DetectCardTypeResponse reports the detected card type.
type DetectCardTypeResponse struct {
	CardType domain.CardType `json:"card_type"`
}

// UserResponse describes the authenticated account for the home greeting.
type UserResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Surname  string    `json:"surname"`
	Email    string    `json:"email"`
	Initials string    `json:"initials"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.ID,
		Name:     user.Name,
		Surname:  user.Surname,
		Email:    user.Email,
		Initials: user.Initials(),
	}
}

// CardResponse represents a stored card. The number is always masked.
// Expired reports whether the expiration month has passed.
type CardResponse struct {
	ID              uuid.UUID       `json:"id"`
	OwnerName       string          `json:"owner_name"`
	OwnerSurname    string          `json:"owner_surname"`
	MaskedNumber    string          `json:"masked_number"`
	LastFour        string          `json:"last_four"`
	ExpirationMonth int             `json:"expiration_month"`
	ExpirationYear  int             `json:"expiration_year"`
	Type            domain.CardType `json:"type"`
	Expired         bool            `json:"expired"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CardListResponse wraps the user's cards.
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}

func cardToResponse(card *domain.Card, now time.Time) CardResponse {
	return CardResponse{
		ID:              card.ID,
		OwnerName:       card.OwnerName,
		OwnerSurname:    card.OwnerSurname,
		MaskedNumber:    card.Masked(),
		LastFour:        card.LastFour,
		ExpirationMonth: card.ExpirationMonth,
		ExpirationYear:  card.ExpirationYear,
		Type:            card.Type,
		Expired:         card.ExpiredAt(now),
		CreatedAt:       card.CreatedAt,
	}
}

func cardsToResponse(cards []domain.Card, now time.Time) CardListResponse {
	resp := CardListResponse{Cards: make([]CardResponse, 0, len(cards))}
	for i := range cards {
		resp.Cards = append(resp.Cards, cardToResponse(&cards[i], now))
	}
	return resp
}
