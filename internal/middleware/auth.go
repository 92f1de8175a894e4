package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rachmurali02/social-app/internal/domain"
	"github.com/rachmurali02/social-app/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const callerIDKey = "caller_id"

// Auth resolves the caller from an HS256 bearer token. The token subject is
// the caller id; requests without a valid token never reach the handlers.
func Auth(secret []byte, issuer string) ginext.HandlerFunc {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(c *ginext.Context) {
		subject, err := authenticate(parser, secret, c.GetHeader("Authorization"))
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Kind:  string(domain.KindUnauthorized),
				Error: "missing or invalid bearer token",
			})
			return
		}

		c.Set(callerIDKey, subject)
		c.Next()
	}
}

func authenticate(parser *jwt.Parser, secret []byte, header string) (string, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return "", errors.New("no bearer token")
	}

	var claims jwt.RegisteredClaims
	if _, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}); err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}

	return claims.Subject, nil
}

// CallerID returns the authenticated caller, or "" outside Auth.
func CallerID(c *ginext.Context) string {
	return c.GetString(callerIDKey)
}
