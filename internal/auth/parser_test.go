package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParse(t *testing.T) {
	userID := uuid.New()
	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "lan.nguyen@example.com",
		"role":  "CUSTOMER",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	principal, err := NewParser(testSecret).Parse(tokenString)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if principal.UserID != userID {
		t.Errorf("user id = %s, want %s", principal.UserID, userID)
	}
	if principal.Email != "lan.nguyen@example.com" {
		t.Errorf("email = %q", principal.Email)
	}
	if principal.Role != model.RoleCustomer {
		t.Errorf("role = %q", principal.Role)
	}
}

func TestParse_Invalid(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name  string
		token string
	}{
		{
			"wrong secret",
			signToken(t, "other-secret", jwt.MapClaims{"sub": userID, "role": "STAFF"}),
		},
		{
			"expired",
			signToken(t, testSecret, jwt.MapClaims{
				"sub":  userID,
				"role": "STAFF",
				"exp":  time.Now().Add(-time.Hour).Unix(),
			}),
		},
		{
			"bad subject",
			signToken(t, testSecret, jwt.MapClaims{"sub": "not-a-uuid", "role": "STAFF"}),
		},
		{
			"unknown role",
			signToken(t, testSecret, jwt.MapClaims{"sub": userID, "role": "MANAGER"}),
		},
		{
			"garbage",
			"not.a.token",
		},
	}

	parser := NewParser(testSecret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parser.Parse(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}
