package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := NewJWT("my-secret-key")

	userID := int64(123)
	email := "test@example.com"

	token, err := j.Generate(userID, email)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if token == "" {
		t.Fatal("Generate() returned empty token")
	}

	claims, err := j.Validate(token)
	if err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("Validate() got UserID %d, want %d", claims.UserID, userID)
	}
	if claims.Email != email {
		t.Errorf("Validate() got Email %s, want %s", claims.Email, email)
	}
}

func TestJWT_TamperedSignature(t *testing.T) {
	j := NewJWT("my-secret-key")

	token, err := j.Generate(1, "test@example.com")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + ".invalid-signature"
	if _, err := j.Validate(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() tampered token error = %v, want ErrInvalidToken", err)
	}
}

func TestJWT_WrongSecret(t *testing.T) {
	token, err := NewJWT("secret-a").Generate(1, "test@example.com")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if _, err := NewJWT("secret-b").Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() with wrong secret error = %v, want ErrInvalidToken", err)
	}
}

func TestJWT_InvalidFormat(t *testing.T) {
	j := NewJWT("my-secret-key")

	if _, err := j.Validate("invalid.token"); err == nil {
		t.Error("Validate() accepted invalid format")
	}
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := NewJWT("my-secret-key")

	claims := &Claims{
		UserID: 1,
		Email:  "expired@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := j.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() expired token error = %v, want ErrInvalidToken", err)
	}
}

func TestJWT_RejectsUnsignedAlg(t *testing.T) {
	j := NewJWT("my-secret-key")

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing none-alg token: %v", err)
	}

	if _, err := j.Validate(token); err == nil {
		t.Error(`Validate() accepted token with alg "none"`)
	}
}
