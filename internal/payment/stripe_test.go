package payment

import "testing"

func TestIntentIDFromSecret(t *testing.T) {
	id, err := intentIDFromSecret("pi_3ABC123_secret_xyz789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "pi_3ABC123" {
		t.Errorf("id = %q", id)
	}
}

func TestIntentIDFromSecretRejectsMalformedInput(t *testing.T) {
	for _, secret := range []string{"", "pi_3ABC123", "seti_1X_secret_y", "garbage"} {
		if _, err := intentIDFromSecret(secret); err == nil {
			t.Errorf("secret %q must be rejected", secret)
		}
	}
}

func TestNewStripeConfirmerRequiresKey(t *testing.T) {
	if _, err := NewStripeConfirmer(""); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := NewStripeConfirmer("sk_test_123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
