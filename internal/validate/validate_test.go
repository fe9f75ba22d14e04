package validate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/marketbay/storefront/internal/commerce/ports"
)

func TestStructRejectsNonPositivePrice(t *testing.T) {
	err := Struct(ports.ProductInput{
		Name:        "Mug",
		Description: "A mug",
		Price:       0,
		Quantity:    3,
		CategoryID:  1,
	})
	if err == nil {
		t.Fatal("expected a validation error for price 0")
	}
	if !IsValidation(err) {
		t.Fatalf("expected a validation error, got %T", err)
	}
}

func TestStructRejectsPasswordMismatch(t *testing.T) {
	err := Struct(ports.RegisterInput{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "secret99",
		ConfirmPassword: "secret00",
	})
	if err == nil {
		t.Fatal("expected a validation error for mismatched passwords")
	}
	if !strings.Contains(err.Error(), "must match password") {
		t.Errorf("message = %q", err)
	}
}

func TestStructRejectsBadEmail(t *testing.T) {
	err := Struct(ports.RegisterInput{
		Username:        "alice",
		Email:           "not-an-email",
		Password:        "secret99",
		ConfirmPassword: "secret99",
	})
	if err == nil {
		t.Fatal("expected a validation error for a bad email")
	}
	if !strings.Contains(err.Error(), "email must be a valid email") {
		t.Errorf("message = %q", err)
	}
}

func TestStructAcceptsValidInput(t *testing.T) {
	err := Struct(ports.CommentInput{Text: "great", Rating: 5, ProductID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructRejectsRatingOutOfRange(t *testing.T) {
	for _, rating := range []int{0, 6} {
		if err := Struct(ports.CommentInput{Text: "x", Rating: rating, ProductID: 1}); err == nil {
			t.Errorf("rating %d must be rejected", rating)
		}
	}
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func TestImageAcceptsSmallPNG(t *testing.T) {
	if err := Image(append(pngHeader, make([]byte, 64)...)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestImageRejectsOversizedFile(t *testing.T) {
	huge := append(pngHeader, bytes.Repeat([]byte{0}, maxImageBytes)...)
	err := Image(huge)
	if err == nil {
		t.Fatal("expected an error for an oversized image")
	}
	if err.Error() != "file size must be less than 5MB" {
		t.Errorf("message = %q", err)
	}
}

func TestImageRejectsNonImageContent(t *testing.T) {
	err := Image([]byte("%PDF-1.4 not an image"))
	if err == nil {
		t.Fatal("expected an error for non-image content")
	}
	if err.Error() != "file must be an image" {
		t.Errorf("message = %q", err)
	}
}
