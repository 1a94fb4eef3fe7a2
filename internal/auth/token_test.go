package auth

import (
	"strings"
	"testing"
	"time"
)

func TestGeneratePairAndValidate(t *testing.T) {
	manager, err := NewTokenManager("test-secret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	pair, err := manager.GeneratePair("64f1c0ffee0000000000abcd", true)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("empty token in pair")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Error("access and refresh tokens are identical")
	}

	for _, token := range []string{pair.AccessToken, pair.RefreshToken} {
		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if claims.UserID != "64f1c0ffee0000000000abcd" {
			t.Errorf("userId = %q", claims.UserID)
		}
		if !claims.IsAdmin {
			t.Error("isAdmin claim lost")
		}
		if claims.Issuer != "cinema-backend" {
			t.Errorf("issuer = %q", claims.Issuer)
		}
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer, _ := NewTokenManager("secret-one", time.Minute, time.Hour)
	verifier, _ := NewTokenManager("secret-two", time.Minute, time.Hour)

	pair, err := issuer.GeneratePair("user", false)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}

	if _, err := verifier.Validate(pair.AccessToken); err == nil {
		t.Fatal("token signed with another secret validated")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	manager, _ := NewTokenManager("test-secret", -time.Minute, -time.Minute)

	pair, err := manager.GeneratePair("user", false)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}

	if _, err := manager.Validate(pair.AccessToken); err == nil {
		t.Fatal("expired token validated")
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	manager, _ := NewTokenManager("test-secret", time.Minute, time.Hour)

	pair, err := manager.GeneratePair("user", false)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}

	tampered := strings.Replace(pair.AccessToken, ".", ".x", 1)
	if _, err := manager.Validate(tampered); err == nil {
		t.Fatal("tampered token validated")
	}
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	if _, err := NewTokenManager("", time.Minute, time.Hour); err == nil {
		t.Fatal("empty secret accepted")
	}
}
