package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/idtoken"
)

var (
	ErrGoogleLoginDisabled = errors.New("google login is not configured")
	ErrInvalidIDToken      = errors.New("invalid google id token")
)

type GoogleIdentity struct {
	Email string
	Name  string
}

type GoogleVerifierInterface interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type GoogleVerifier struct {
	clientID string
	validate validateFunc
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		validate: idtoken.Validate,
	}
}

// Verify checks the token signature and audience and returns the verified
// email of its subject.
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	if v.clientID == "" {
		return nil, ErrGoogleLoginDisabled
	}
	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if strings.TrimSpace(email) == "" || !verified {
		return nil, fmt.Errorf("%w: email is missing or unverified", ErrInvalidIDToken)
	}
	name, _ := payload.Claims["name"].(string)

	return &GoogleIdentity{Email: email, Name: name}, nil
}
