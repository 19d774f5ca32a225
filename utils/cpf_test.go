package utils

import "testing"

func TestMaskCPF(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"123", "123"},
		{"1234", "123.4"},
		{"123456", "123.456"},
		{"1234567", "123.456.7"},
		{"123456789", "123.456.789"},
		{"1234567890", "1234567890"},
		{"123.456.789-0", "1234567890"},
		{"12345678901", "123.456.789-01"},
		{"123456789012345", "123.456.789-01"},
		{"123.456.789-01", "123.456.789-01"},
		{"abc12x3", "123"},
	}

	for _, tt := range tests {
		if got := MaskCPF(tt.in); got != tt.want {
			t.Errorf("MaskCPF(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCPF(t *testing.T) {
	if got := NormalizeCPF(" 123.456.789-01 "); got != "12345678901" {
		t.Fatalf("NormalizeCPF = %q", got)
	}
	if got := NormalizeCPF(""); got != "" {
		t.Fatalf("NormalizeCPF(empty) = %q", got)
	}
}
