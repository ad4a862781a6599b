package authn

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ncc-uat/ncc-admin-services/models"
)

var ErrInvalidJWT = errors.New("invalid jwt token")
var ErrInvalidClaims = errors.New("invalid claims")
var ErrNoSigningKey = errors.New("signing key is required")

type Claims struct {
	jwt.StandardClaims
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Groups     []string `json:"groups"`
	IsAdmin    bool     `json:"is_admin"`
	IsBusiness bool     `json:"is_business"`
}

// User rebuilds the identity the token was issued for.
func (c Claims) User() models.User {
	return models.User{
		ID:         c.Subject,
		Name:       c.Name,
		Email:      c.Email,
		Groups:     append([]string(nil), c.Groups...),
		IsAdmin:    c.IsAdmin,
		IsBusiness: c.IsBusiness,
	}
}

// Issuer signs and verifies HS256 session tokens.
type Issuer struct {
	key    []byte
	ttl    time.Duration
	issuer string
}

func NewIssuer(key string, ttl time.Duration, issuer string) (*Issuer, error) {
	if key == "" {
		return nil, ErrNoSigningKey
	}
	return &Issuer{key: []byte(key), ttl: ttl, issuer: issuer}, nil
}

func (i *Issuer) Issue(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   user.ID,
			Issuer:    i.issuer,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(i.ttl).Unix(),
		},
		Name:       user.Name,
		Email:      user.Email,
		Groups:     user.Groups,
		IsAdmin:    user.IsAdmin,
		IsBusiness: user.IsBusiness,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return token, nil
}

// Parse verifies the signature and expiry of token and returns its claims.
func (i *Issuer) Parse(token string) (Claims, error) {
	claims := Claims{}
	t, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.key, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidJWT, err)
	}

	if t == nil || !t.Valid || claims.Subject == "" {
		return Claims{}, ErrInvalidClaims
	}
	return claims, nil
}
