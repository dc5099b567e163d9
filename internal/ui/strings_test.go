package ui

import "testing"

func TestFormatNaira(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want string
	}{
		{"zero", 0, "₦0"},
		{"small", 999, "₦999"},
		{"thousand", 1000, "₦1,000"},
		{"reference_cart", 38500, "₦38,500"},
		{"with_shipping", 43388, "₦43,388"},
		{"millions", 1234567, "₦1,234,567"},
		{"exact_groups", 123456, "₦123,456"},
		{"negative", -2500, "-₦2,500"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := formatNaira(tc.in)
			if got != tc.want {
				t.Fatalf("formatNaira(%d) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("  Adire Silk Scarf  ", 100); got != "Adire Silk Scarf" {
		t.Fatalf("truncate trims = %q", got)
	}
	if got := truncate("abcd", 2); got != "ab" {
		t.Fatalf("truncate limit<=3 = %q, want ab", got)
	}
	got := truncate("Handwoven Kente Throw Pillow", 12)
	if len([]rune(got)) > 12 {
		t.Fatalf("got %q (%d runes), want <=12", got, len([]rune(got)))
	}
	if got != "Handwoven..." {
		t.Fatalf("truncate = %q, want Handwoven...", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("padRight over-width = %q, want unchanged", got)
	}
	if got := padRight("₦500", 6); got != "₦500  " {
		t.Fatalf("padRight counts runes, got %q", got)
	}
}

func TestStars(t *testing.T) {
	cases := []struct {
		name   string
		rating float64
		want   string
	}{
		{"rounds_up", 4.8, "★★★★★ 4.8"},
		{"rounds_down", 4.3, "★★★★☆ 4.3"},
		{"zero", 0, "☆☆☆☆☆ 0.0"},
		{"full", 5, "★★★★★ 5.0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stars(tc.rating)
			if got != tc.want {
				t.Fatalf("stars(%v) = %q, want %q", tc.rating, got, tc.want)
			}
		})
	}
}
