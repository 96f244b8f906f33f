package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/nourishnet/ordering-service/pkg/errs"
)

// SessionDuration is the sliding session window; the auth middleware re-issues
// the cookie with a fresh expiry on every authenticated request.
const SessionDuration = 24 * time.Hour

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "nourish_net_session"

func CreateSessionToken(userID int64, fullname string, externalID string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["userID"] = userID
	claims["fullname"] = fullname
	claims["externalID"] = externalID
	claims["exp"] = time.Now().Add(SessionDuration).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

// RefreshSessionToken re-signs a valid session token with a fresh expiry,
// keeping the session window sliding.
func RefreshSessionToken(tokenString string, jwtSecretKey string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrNotLoggedIn
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", errs.ErrNotLoggedIn
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errs.ErrNotLoggedIn
	}

	claims["exp"] = time.Now().Add(SessionDuration).Unix()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecretKey))
}

func ParseSessionToken(tokenString string, jwtSecretKey string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrNotLoggedIn
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return 0, errs.ErrNotLoggedIn
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errs.ErrNotLoggedIn
	}

	userID, ok := claims["userID"].(float64)
	if !ok {
		return 0, errs.ErrNotLoggedIn
	}

	return int64(userID), nil
}
