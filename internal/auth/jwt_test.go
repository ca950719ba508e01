package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	tokens := NewTokenService("test-secret", "journali.nl", time.Hour)
	userID := uuid.New()

	token, err := tokens.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := tokens.Validate(token)
	require.NoError(t, err)
	require.Equal(t, userID, parsed)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	tokens := NewTokenService("test-secret", "journali.nl", time.Hour)

	_, err := tokens.Validate("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", "journali.nl", time.Hour)
	validator := NewTokenService("secret-b", "journali.nl", time.Hour)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = validator.Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsWrongIssuer(t *testing.T) {
	issuer := NewTokenService("test-secret", "someone-else.example", time.Hour)
	validator := NewTokenService("test-secret", "journali.nl", time.Hour)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = validator.Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	tokens := NewTokenService("test-secret", "journali.nl", -time.Minute)

	token, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	_, err = tokens.Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
