// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package slug

import "testing"

func TestGenerate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World! 2025", "hello-world-2025"},
		{"Sports & Games", "sports-games"},
		{"  Trimmed  ", "trimmed"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER case", "upper-case"},
		{"many   spaces", "many-spaces"},
		{"!!!", ""},
	}
	for _, tc := range cases {
		if got := Generate(tc.in); got != tc.want {
			t.Errorf("Generate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"a", "abc", "a-b-c", "news-2025", "x9"}
	for _, s := range valid {
		if !IsValid(s) {
			t.Errorf("IsValid(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "Upper", "has space", "unicode-ß"}
	for _, s := range invalid {
		if IsValid(s) {
			t.Errorf("IsValid(%q) = true, want false", s)
		}
	}
}
