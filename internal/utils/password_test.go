package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "hunter22" {
		t.Error("hash should not equal the plaintext")
	}
	if !CheckPassword(hashed, "hunter22") {
		t.Error("expected correct password to check out")
	}
	if CheckPassword(hashed, "hunter23") {
		t.Error("expected wrong password to fail")
	}
}
