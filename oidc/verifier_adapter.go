package oidcutil

import (
	"context"

	coreoidc "github.com/coreos/go-oidc/v3/oidc"

	"fitapi/models"
)

// VerifierAdapter exposes VerifyToken as an object implementing api.TokenVerifier.
type VerifierAdapter struct {
	Verifier *coreoidc.IDTokenVerifier
}

func (a VerifierAdapter) Verify(ctx context.Context, raw string) (models.Identity, error) {
	return VerifyToken(ctx, a.Verifier, raw)
}
