package auth

import "testing"

func TestPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword("s3cret", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundtrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken(7, "alice", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "alice" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(1, "bob", "viewer")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewJWTService("secret-b").ValidateToken(token); err == nil {
		t.Error("token signed with a different secret must not validate")
	}
}
