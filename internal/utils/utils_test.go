package utils

import (
	"strings"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	slug := GenerateSlug("Salon Festival")
	if !strings.HasPrefix(slug, "salon-festival-") {
		t.Fatalf("unexpected slug prefix: %s", slug)
	}
	if len(slug) != len("salon-festival-")+5 {
		t.Fatalf("expected a 5-character suffix, got %s", slug)
	}

	if GenerateSlug("Salon Festival") == slug {
		t.Fatal("two generated slugs should not collide")
	}

	odd := GenerateSlug("  ¡Grand! Opening 2026  ")
	if strings.ContainsAny(odd, " !¡") {
		t.Fatalf("slug contains unsanitized characters: %s", odd)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"9999999999", "9999999999", false},
		{"+1 (999) 999-9999", "19999999999", false},
		{" 234-801-1122334 ", "2348011122334", false},
		{"12345", "", true},             // too short
		{"12345678901234567", "", true}, // too long
		{"99999abc99", "", true},        // letters
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := NormalizePhone(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("NormalizePhone(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizePhone(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
