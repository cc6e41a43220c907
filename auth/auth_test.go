package auth

import (
	"testing"

	"github.com/AurifyAE/Aurify-backend/middleware"
)

func TestSignTokenRoundTrip(t *testing.T) {
	token, err := signToken("user-1", "admin-1", "user")
	if err != nil {
		t.Fatalf("signToken: %v", err)
	}

	claims, err := middleware.ValidateJWT("Bearer " + token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "user-1" || claims.AdminID != "admin-1" || claims.Role != "user" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := middleware.ValidateJWT("Bearer not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
	if _, err := middleware.ValidateJWT("no-bearer-prefix"); err == nil {
		t.Fatal("expected error for missing prefix")
	}
}
