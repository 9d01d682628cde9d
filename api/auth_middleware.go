package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hanksha/car-rental-booking-backend/account"
	bk "github.com/hanksha/car-rental-booking-backend/booking"
)

var ErrInvalidToken = errors.New("invalid token")

var ErrEmptySecret = errors.New("token secret must not be empty")

type AuthUser struct {
	ID   string
	Name string
	Role string
}

func (u AuthUser) Staff() bool {
	return account.IsStaffRole(u.Role)
}

func (u AuthUser) Requester() bk.Requester {
	return bk.Requester{ID: u.ID, Staff: u.Staff()}
}

type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
	Role string `json:"role"`
}

type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) (*TokenVerifier, error) {
	if len(strings.TrimSpace(secret)) == 0 {
		return nil, ErrEmptySecret
	}
	return &TokenVerifier{secret: []byte(secret)}, nil
}

func (v *TokenVerifier) Issue(user AuthUser, ttl time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Name: user.Name,
		Role: user.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)

	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (v *TokenVerifier) Verify(tokenString string) (AuthUser, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return AuthUser{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if len(claims.Subject) == 0 {
		return AuthUser{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return AuthUser{ID: claims.Subject, Name: claims.Name, Role: claims.Role}, nil
}

func JWTAuth(verifier *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if len(authHeader) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")

		if !found {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		user, err := verifier.Verify(tokenString)

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("user", user)
	}
}

func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(AuthUser)

		if !user.Staff() {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}

func currentUser(c *gin.Context) AuthUser {
	return c.MustGet("user").(AuthUser)
}
