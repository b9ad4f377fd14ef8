package models

import "testing"

func TestValidItemType(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"Електроніка", true},
		{"Дитячий світ", true},
		{"електроніка", false},
		{"Electronics", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidItemType(c.value); got != c.want {
			t.Fatalf("ValidItemType(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestValidPriceCategory(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"0-100 грн", true},
		{"5000 грн і більше", true},
		{"0-100", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidPriceCategory(c.value); got != c.want {
			t.Fatalf("ValidPriceCategory(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestValidRegion(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"Львівська", true},
		{"Київська", true},
		{"львівська", false},
		{"Львівська ", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidRegion(c.value); got != c.want {
			t.Fatalf("ValidRegion(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestValidOfferStatus(t *testing.T) {
	if !ValidOfferStatus(OfferStatusAccepted) || !ValidOfferStatus(OfferStatusDeclined) {
		t.Fatal("terminal statuses rejected")
	}
	// pending — исходное состояние, а не решение
	if ValidOfferStatus(OfferStatusPending) {
		t.Fatal("pending accepted as decision")
	}
	if ValidOfferStatus("cancelled") {
		t.Fatal("unknown status accepted")
	}
}
