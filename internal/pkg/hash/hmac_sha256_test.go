package hash

import "testing"

func TestHMACSHA256(t *testing.T) {
	hasher := NewHMACSHA256("test-secret")

	hashed, err := hasher.Hash("482913")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("VerifyMatches", func(t *testing.T) {
		if !hasher.Verify(string(hashed), "482913") {
			t.Fatalf("expected plaintext to verify against its own hash")
		}
	})

	t.Run("VerifyRejectsWrongInput", func(t *testing.T) {
		if hasher.Verify(string(hashed), "482914") {
			t.Fatalf("expected mismatched plaintext to fail verification")
		}
	})

	t.Run("DifferentSecretsProduceDifferentHashes", func(t *testing.T) {
		other, err := NewHMACSHA256("other-secret").Hash("482913")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(other) == string(hashed) {
			t.Fatalf("expected different hashes for different secrets")
		}
	})
}
