package google

import (
	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
)

type Claims struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// TokenVerifier validates Google Sign-In ID tokens against our OAuth client.
type TokenVerifier struct {
	clientID string
}

func NewTokenVerifier(clientID string) *TokenVerifier {
	return &TokenVerifier{clientID: clientID}
}

func (v *TokenVerifier) Verify(idToken string) (*Claims, error) {
	verifier := googleAuthIDTokenVerifier.Verifier{}
	if err := verifier.VerifyIDToken(idToken, []string{v.clientID}); err != nil {
		return nil, err
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, err
	}

	return &Claims{
		Subject: claimSet.Sub,
		Email:   claimSet.Email,
		Name:    claimSet.Name,
		Picture: claimSet.Picture,
	}, nil
}
