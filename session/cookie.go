package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie that carries the signed session id.
const CookieName = "sid"

var ErrInvalidCookie = errors.New("invalid session cookie")

// Codec signs session ids into cookie values and verifies them on the way back.
type Codec struct {
	secret []byte
}

// NewCodec uses secret as the HMAC key. An empty secret gets a random key, so
// cookies only survive as long as the process.
func NewCodec(secret string) (*Codec, error) {
	if secret != "" {
		return &Codec{secret: []byte(secret)}, nil
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate session secret: %w", err)
	}
	return &Codec{secret: key}, nil
}

// Encode wraps the session id in an HS256 token.
func (c *Codec) Encode(sessionID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": sessionID})
	return token.SignedString(c.secret)
}

// Decode returns the session id of a cookie value signed by this codec.
func (c *Codec) Decode(value string) (string, error) {
	token, err := jwt.Parse(value, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidCookie
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCookie
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidCookie
	}
	return sid, nil
}

// Cookie builds the sid cookie for a session. It has no expiry.
func (c *Codec) Cookie(sessionID string) (*http.Cookie, error) {
	value, err := c.Encode(sessionID)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Clear returns a cookie that makes the browser drop sid.
func (c *Codec) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// FromRequest extracts and verifies the session id of r, "" when absent or invalid.
func (c *Codec) FromRequest(r *http.Request) string {
	ck, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	sid, err := c.Decode(ck.Value)
	if err != nil {
		return ""
	}
	return sid
}
