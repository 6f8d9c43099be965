package utils

import "testing"

func TestSignAndParseJWT(t *testing.T) {
	token, err := SignJWT("secret", "uid-123", "student", 60)
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	claims, err := ParseJWT("secret", token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != "uid-123" {
		t.Errorf("UserID = %s, want uid-123", claims.UserID)
	}
	if claims.Role != "student" {
		t.Errorf("Role = %s, want student", claims.Role)
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := SignJWT("secret", "uid-123", "client", 60)
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	if _, err := ParseJWT("other-secret", token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseJWT_Garbage(t *testing.T) {
	if _, err := ParseJWT("secret", "not-a-token"); err == nil {
		t.Error("expected error for garbage token")
	}
}
