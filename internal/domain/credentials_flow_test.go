package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/wallet-api/internal/domain"
	"github.com/phrazzld/wallet-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpThenLogIn(t *testing.T) {
	t.Parallel()

	cipher, err := auth.NewCredentialCipher([]byte("credential-key-that-is-long-enough-32"))
	require.NoError(t, err)

	signUp, err := domain.NewSignUpValidator(cipher, domain.DefaultPasswordPolicy())
	require.NoError(t, err)
	logIn, err := domain.NewLoginValidator(cipher)
	require.NoError(t, err)

	user, result := signUp.Validate(domain.UserSignUp{
		Name:            "John",
		Surname:         "Doe",
		Email:           "a@b.com",
		EmailConfirm:    "a@b.com",
		Password:        "secret1",
		PasswordConfirm: "secret1",
	})
	require.Equal(t, domain.AccountSuccess, result)
	assert.NotEqual(t, []byte("secret1"), user.Password)

	stored := map[string]*domain.User{user.Email: user}
	lookup := func(email string) (*domain.User, bool) {
		u, ok := stored[email]
		return u, ok
	}

	got, loginResult := logIn.Authenticate(domain.UserLogIn{Email: "a@b.com", Password: "secret1"}, lookup)
	assert.Equal(t, domain.LoginSuccess, loginResult)
	assert.Equal(t, user.ID, got.ID)

	assert.Equal(t, domain.LoginUserNotFound,
		logIn.Validate(domain.UserLogIn{Email: "a@b.com", Password: "secret2"}, lookup))
}

// Every name sign-up accepts must be usable as the holder of the account's cards.
func TestSignUpNamesAreCardHolderNames(t *testing.T) {
	t.Parallel()

	cipher, err := auth.NewCredentialCipher([]byte("credential-key-that-is-long-enough-32"))
	require.NoError(t, err)
	numbers, err := auth.NewCardNumberCipher([]byte("credential-key-that-is-long-enough-32"))
	require.NoError(t, err)
	signUp, err := domain.NewSignUpValidator(cipher, domain.DefaultPasswordPolicy())
	require.NoError(t, err)

	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	names := []struct{ name, surname string }{
		{"John", "Doe"},
		{"Sinéad", "O'Neil"},
		{"Anne2", "Smith"},
		{strings.Repeat("é", 60), "Doe"},
		{"Mary Ann", "García-López"},
	}

	for _, n := range names {
		user, result := signUp.Validate(domain.UserSignUp{
			Name:            n.name,
			Surname:         n.surname,
			Email:           "a@b.com",
			EmailConfirm:    "a@b.com",
			Password:        "secret1",
			PasswordConfirm: "secret1",
		})
		if result != domain.AccountSuccess {
			assert.Equal(t, domain.AccountNameInvalid, result, "%q %q", n.name, n.surname)
			continue
		}

		cards, err := domain.NewCardValidator(domain.NewCardTypeDetector(), numbers,
			domain.WithAccountHolder(user.Name, user.Surname))
		require.NoError(t, err)

		got := cards.Validate(domain.CardInput{
			OwnerName:       user.Name,
			OwnerSurname:    user.Surname,
			Number:          "4111111111111111",
			ExpirationMonth: "12",
			ExpirationYear:  "2026",
			CVC:             "123",
		}, nil, today)
		assert.Equal(t, domain.NewCardSuccess, got, "%q %q", n.name, n.surname)
	}
}
