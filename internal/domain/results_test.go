package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardResultCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "success", NewCardSuccess.String())
	assert.Equal(t, "owner_name_invalid", NewCardOwnerNameInvalid.String())
	assert.Equal(t, "cvc_length_invalid", NewCardCVCLengthInvalid.String())
	assert.Equal(t, "card_already_added", NewCardAlreadyAdded.String())
	assert.Equal(t, "unknown", NewCardResult(0).String())
	assert.True(t, NewCardSuccess.OK())
	assert.False(t, NewCardResult(0).OK())

	for r := NewCardSuccess; r <= NewCardError; r++ {
		assert.NotEqual(t, "unknown", r.String(), "result %d has no code", int(r))
	}
}

func TestResultJSON(t *testing.T) {
	t.Parallel()

	payload, err := json.Marshal(map[string]any{
		"card":    NewCardTypeInvalid,
		"account": AccountPasswordTooShort,
		"login":   LoginUserNotFound,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"card":"card_type_invalid","account":"password_too_short","login":"user_not_found"}`, string(payload))

	var decoded struct {
		Card  NewCardResult `json:"card"`
		Login LoginResult   `json:"login"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, NewCardTypeInvalid, decoded.Card)
	assert.Equal(t, LoginUserNotFound, decoded.Login)

	_, err = json.Marshal(NewAccountResult(0))
	assert.ErrorIs(t, err, ErrUnknownResult)

	var r LoginResult
	assert.ErrorIs(t, r.UnmarshalText([]byte("nope")), ErrUnknownResult)
}

func TestAccountAndLoginResultCodes(t *testing.T) {
	t.Parallel()

	for r := AccountSuccess; r <= AccountEmailAlreadyRegistered; r++ {
		assert.NotEqual(t, "unknown", r.String())
	}
	for r := LoginSuccess; r <= LoginUserNotFound; r++ {
		assert.NotEqual(t, "unknown", r.String())
	}
	assert.Equal(t, "email_already_registered", AccountEmailAlreadyRegistered.String())
	assert.Equal(t, "name_invalid", AccountNameInvalid.String())
	assert.True(t, LoginSuccess.OK())
	assert.False(t, LoginEmptyFields.OK())
}
