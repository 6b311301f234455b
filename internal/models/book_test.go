package models

import (
	"math"
	"testing"
)

func TestNextRating_FirstRating(t *testing.T) {
	book := Book{AverageRating: 0, RatingsCount: 0}

	avg, count := book.NextRating(3)

	if avg != 3 {
		t.Errorf("expected average 3, got %v", avg)
	}
	if count != 1 {
		t.Errorf("expected count 1, got %v", count)
	}
}

func TestNextRating_RunningMean(t *testing.T) {
	book := Book{AverageRating: 4.0, RatingsCount: 9}

	avg, count := book.NextRating(5)

	if avg != 4.1 {
		t.Errorf("expected average 4.1, got %v", avg)
	}
	if count != 10 {
		t.Errorf("expected count 10, got %v", count)
	}
}

func TestNextRating_RoundsHalfUpAtTwoDecimals(t *testing.T) {
	// (0.35 + 5) / 2 = 2.675, which sits below 2.675 in binary; the
	// epsilon keeps it rounding up to 2.68 rather than down to 2.67.
	book := Book{AverageRating: 0.35, RatingsCount: 1}

	avg, count := book.NextRating(5)

	if math.Abs(avg-2.68) > 1e-9 {
		t.Errorf("expected average 2.68, got %v", avg)
	}
	if count != 2 {
		t.Errorf("expected count 2, got %v", count)
	}
}

func TestValidUsername(t *testing.T) {
	cases := []struct {
		username string
		want     bool
	}{
		{"ab", false},
		{"abc", true},
		{"abcdefghijklmnopqrst", true},
		{"abcdefghijklmnopqrstu", false},
	}
	for _, c := range cases {
		if got := ValidUsername(c.username); got != c.want {
			t.Errorf("ValidUsername(%q) = %v, want %v", c.username, got, c.want)
		}
	}
}

func TestValidPassword(t *testing.T) {
	if ValidPassword("1234567") {
		t.Error("expected 7-char password to be rejected")
	}
	if !ValidPassword("12345678") {
		t.Error("expected 8-char password to be accepted")
	}
}
