package oidcutil

import (
	"context"
	"log"
	"math"
	"strconv"
	"time"

	coreoidc "github.com/coreos/go-oidc/v3/oidc"

	"fitapi/config"
	"fitapi/logger"
	"fitapi/models"
)

// Init initializes the OIDC provider with exponential backoff and returns the
// provider & verifier.
func Init(ctx context.Context) (*coreoidc.Provider, *coreoidc.IDTokenVerifier) {
	p := initProviderWithBackoff(ctx, config.OIDCIssuer)
	verifier := p.Verifier(&coreoidc.Config{ClientID: config.ClientID})
	return p, verifier
}

// VerifyToken verifies a raw token, validates audience & expiration, and
// extracts the caller identity.
func VerifyToken(ctx context.Context, verifier *coreoidc.IDTokenVerifier, raw string) (models.Identity, error) {
	var identity models.Identity
	tok, err := verifier.Verify(ctx, raw)
	if err != nil {
		return identity, err
	}
	var claims struct {
		Sub   string   `json:"sub"`
		Aud   string   `json:"aud"`
		Exp   int64    `json:"exp"`
		Name  string   `json:"name"`
		Roles []string `json:"roles"`
	}
	if err := tok.Claims(&claims); err != nil {
		return identity, err
	}
	if claims.Aud != config.Audience {
		return identity, ErrInvalidAudience{Expected: config.Audience, Got: claims.Aud}
	}
	if time.Now().Unix() > claims.Exp {
		return identity, ErrTokenExpired{}
	}
	identity = models.Identity{Subject: claims.Sub, Name: claims.Name, Roles: claims.Roles}
	return identity, nil
}

// Errors

type ErrInvalidAudience struct{ Expected, Got string }

func (e ErrInvalidAudience) Error() string {
	return "invalid audience: expected " + e.Expected + " got " + e.Got
}

type ErrTokenExpired struct{}

func (e ErrTokenExpired) Error() string { return "token expired" }

func initProviderWithBackoff(ctx context.Context, issuer string) *coreoidc.Provider {
	maxAttempts := 8
	if v, perr := strconv.Atoi(config.OIDCMaxAttempts); perr == nil && v > 0 {
		maxAttempts = v
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var provider *coreoidc.Provider
		provider, err = coreoidc.NewProvider(ctx, issuer)
		if err == nil {
			logger.Info("oidc provider initialized", logger.FieldKV("issuer", issuer), logger.FieldKV("attempt", attempt))
			return provider
		}
		sleep := time.Duration(math.Min(float64(time.Second*30), float64(time.Second)*math.Pow(2, float64(attempt))))
		logger.Error("oidc provider init failed", err, logger.FieldKV("attempt", attempt), logger.FieldKV("next_sleep", sleep.String()))
		select {
		case <-time.After(sleep):
			continue
		case <-ctx.Done():
			logger.Error("context canceled during oidc init", ctx.Err())
			log.Fatalf("Failed to initialize OIDC provider: %v", err)
		}
	}
	log.Fatalf("Failed to initialize OIDC provider after retries: %v", err)
	return nil
}
