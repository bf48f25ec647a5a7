package middleware

import "testing"

func TestIdentityToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-at-least-32-characters-long")

	token, err := GenerateIdentityToken("user-abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ParseIdentityToken(token); got != "user-abc123" {
		t.Errorf("expected user-abc123, got %q", got)
	}
}

func TestParseIdentityToken_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-at-least-32-characters-long")

	if got := ParseIdentityToken(""); got != "" {
		t.Errorf("empty token: expected empty id, got %q", got)
	}
	if got := ParseIdentityToken("not-a-token"); got != "" {
		t.Errorf("garbage token: expected empty id, got %q", got)
	}
}

func TestParseIdentityToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret-at-least-32-characters-long")
	token, err := GenerateIdentityToken("user-abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret-at-least-32-characters-long")
	if got := ParseIdentityToken(token); got != "" {
		t.Errorf("token signed with a different secret must not parse, got %q", got)
	}
}
