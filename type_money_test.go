package hyperbtc

import (
	"errors"
	"testing"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{"1000000", M(1_000_000, "USD"), false},
		{"$85,000", M(85_000, "USD"), false},
		{"  $1,234.56 ", M(1234.56, "USD"), false},
		{"1.5e6", M(1_500_000, "USD"), false},
		{"1_000_000", M(1_000_000, "USD"), false},
		{"-5000", M(-5_000, "USD"), false},
		{"abc", Money{}, true},
		{"$", Money{}, true},
		{"", Money{}, true},
	}
	for _, tc := range tests {
		got, err := ParseMoney(tc.in, "USD")
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseMoney(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && !got.Equal(tc.want) {
			t.Errorf("ParseMoney(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseNetWorth(t *testing.T) {
	if _, err := ParseNetWorth("-100", "USD"); !errors.Is(err, ErrInvalidNetWorth) {
		t.Errorf("ParseNetWorth(-100) error = %v, want ErrInvalidNetWorth", err)
	}
	if _, err := ParseNetWorth("plot twist", "USD"); !errors.Is(err, ErrInvalidNetWorth) {
		t.Errorf("ParseNetWorth(plot twist) error = %v, want ErrInvalidNetWorth", err)
	}
	got, err := ParseNetWorth("$100,000", "USD")
	if err != nil {
		t.Fatalf("ParseNetWorth($100,000) error = %v", err)
	}
	if want := M(100_000, "USD"); !got.Equal(want) {
		t.Errorf("ParseNetWorth($100,000) = %s, want %s", got, want)
	}
	// zero is a legitimate net worth, half the world is close to it
	if _, err := ParseNetWorth("0", "USD"); err != nil {
		t.Errorf("ParseNetWorth(0) error = %v", err)
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{M(25_000, "USD"), "$25,000"},
		{M(-4_350, "USD"), "-$4,350"},
		{M(21_423_809.5238, "USD"), "$21,423,810"},
		{M(449.9e12, "USD"), "$449,900,000,000,000"},
		{M(0, "USD"), "$0"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoneyPctOf(t *testing.T) {
	if got := M(30, "USD").PctOf(M(100, "USD")); !got.Equal(30) {
		t.Errorf("PctOf = %v, want 30%%", got)
	}
	if got := M(134.97e12, "USD").PctOf(M(449.9e12, "USD")); !got.Equal(30) {
		t.Errorf("US wealth share = %v, want 30%%", got)
	}
}
