package entities

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestCouponDiscountFor(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		c := Coupon{Discount: 10, DiscountType: DiscountTypePercentage}
		got, err := c.DiscountFor(1448)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(got-144.8) > 1e-9 {
			t.Fatalf("expected 144.8, got %v", got)
		}
	})

	t.Run("fixed", func(t *testing.T) {
		c := Coupon{Discount: 50, DiscountType: DiscountTypeFixed}
		got, err := c.DiscountFor(1448)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 50 {
			t.Fatalf("expected 50, got %v", got)
		}
	})

	t.Run("fixed never exceeds the amount", func(t *testing.T) {
		c := Coupon{Discount: 50, DiscountType: DiscountTypeFixed}
		got, err := c.DiscountFor(30)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 30 {
			t.Fatalf("expected 30, got %v", got)
		}
	})

	t.Run("unknown discount type", func(t *testing.T) {
		c := Coupon{Discount: 10, DiscountType: "store_credit"}
		_, err := c.DiscountFor(100)
		if !errors.Is(err, ErrUnknownDiscountType) {
			t.Fatalf("expected ErrUnknownDiscountType, got %v", err)
		}
	})
}

func TestCouponExpired(t *testing.T) {
	validUntil := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	c := Coupon{ValidUntil: validUntil}

	if c.Expired(validUntil.Add(-time.Second)) {
		t.Fatal("coupon should still be valid just before validUntil")
	}
	if !c.Expired(validUntil) {
		t.Fatal("coupon should be expired at validUntil")
	}
}

func TestNormalizeCouponCode(t *testing.T) {
	if got := NormalizeCouponCode("  welcome10 "); got != "WELCOME10" {
		t.Fatalf("expected WELCOME10, got %q", got)
	}
}
