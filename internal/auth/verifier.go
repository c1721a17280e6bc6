package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"

	"github.com/festy23/ticketing/internal/apperror"
	"github.com/festy23/ticketing/internal/config"
)

var (
	// ErrMissingToken is returned when no bearer token was presented.
	ErrMissingToken = apperror.Unauthenticated("missing bearer token")
	// ErrInvalidToken is returned when the token fails verification.
	ErrInvalidToken = apperror.Unauthenticated("invalid or expired token")
	// ErrAuthenticationRequired is returned when no principal was resolved.
	ErrAuthenticationRequired = apperror.Unauthenticated("authentication required")
)

type roleSet struct {
	Roles []string `json:"roles"`
}

// Claims is the token payload issued by the identity provider.
type Claims struct {
	PreferredUsername string             `json:"preferred_username"`
	RealmAccess       roleSet            `json:"realm_access"`
	ResourceAccess    map[string]roleSet `json:"resource_access,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates bearer tokens and extracts the principal.
type Verifier struct {
	parser   *jwt.Parser
	key      any
	method   jwt.SigningMethod
	clientID string
}

// NewVerifier builds a verifier for an HS256 secret or an RS256 public key.
func NewVerifier(cfg config.AuthConfig) (*Verifier, error) {
	v := &Verifier{clientID: cfg.ClientID}

	switch {
	case cfg.PublicKeyFile != "":
		pem, err := os.ReadFile(cfg.PublicKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read public key: %w", err)
		}
		key, err := jwt.ParseRSAPublicKeyFromPEM(pem)
		if err != nil {
			return nil, fmt.Errorf("failed to parse public key: %w", err)
		}
		v.key, v.method = key, jwt.SigningMethodRS256
	case cfg.JWTSecret != "":
		v.key, v.method = []byte(cfg.JWTSecret), jwt.SigningMethodHS256
	default:
		return nil, errors.New("no token verification key configured")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{v.method.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	v.parser = jwt.NewParser(opts...)

	return v, nil
}

// Verify parses and validates token and returns its principal.
func (v *Verifier) Verify(token string) (Principal, error) {
	if token == "" {
		return Principal{}, ErrMissingToken
	}

	var claims Claims
	_, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	username := claims.PreferredUsername
	if username == "" {
		username = claims.Subject
	}
	if username == "" {
		return Principal{}, ErrInvalidToken
	}

	return Principal{Username: username, Roles: v.roles(claims)}, nil
}

func (v *Verifier) roles(claims Claims) []Role {
	seen := make(map[Role]struct{})
	var roles []Role
	add := func(names []string) {
		for _, name := range names {
			r := Role(name)
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			roles = append(roles, r)
		}
	}

	add(claims.RealmAccess.Roles)
	if client, ok := claims.ResourceAccess[v.clientID]; ok {
		add(client.Roles)
	}
	return roles
}
