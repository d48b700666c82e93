// Package middleware holds the gin middleware of the API.
package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

var (
	ErrTokenInvalid = errors.New("invalid access token")
	ErrTokenExpired = errors.New("access token has expired")
)

// Claims are the access token claims issued by the customer portal's
// identity provider.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenVerifier validates HS256 bearer tokens.
type TokenVerifier struct {
	signingKey []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{signingKey: []byte(secret)}
}

// Sign issues a token for p. Used by tests and local tooling.
func (v *TokenVerifier) Sign(p entities.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: p.Email,
		Role:  string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return tok.SignedString(v.signingKey)
}

func (v *TokenVerifier) Verify(token string) (entities.Principal, error) {
	if len(v.signingKey) == 0 {
		return entities.Principal{}, ErrTokenInvalid
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.Principal{}, ErrTokenExpired
		}
		return entities.Principal{}, ErrTokenInvalid
	}
	if !parsed.Valid || strings.TrimSpace(claims.Subject) == "" {
		return entities.Principal{}, ErrTokenInvalid
	}

	role := entities.RoleCustomer
	if entities.Role(claims.Role) == entities.RoleAdmin {
		role = entities.RoleAdmin
	}
	return entities.Principal{
		UserID: claims.Subject,
		Email:  strings.ToLower(strings.TrimSpace(claims.Email)),
		Role:   role,
	}, nil
}

// Authenticate resolves the caller from the Authorization header. Requests
// without a header continue as anonymous; the usecases decide whether that
// is enough. A present but invalid token is rejected with 401.
func Authenticate(v *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.Set(principalKey, entities.Principal{})
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abortUnauthorized(c, "INVALID_AUTHORIZATION_FORMAT", "Invalid authorization header format. Expected 'Bearer <token>'")
			return
		}

		p, err := v.Verify(strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				abortUnauthorized(c, "TOKEN_EXPIRED", "Access token has expired")
				return
			}
			abortUnauthorized(c, "TOKEN_INVALID", "Invalid access token")
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// Principal returns the caller set by Authenticate; anonymous when absent.
func Principal(c *gin.Context) entities.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(entities.Principal); ok {
			return p
		}
	}
	return entities.Principal{}
}

// SetPrincipal is used by handler tests to bypass token parsing.
func SetPrincipal(p entities.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(principalKey, p)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	appErr := pkg.NewDomainErrorSimple(code, message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
