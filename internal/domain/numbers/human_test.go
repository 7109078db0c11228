package numbers

import "testing"

func TestHuman(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{99, "99"},
		{999, "999"},
		{1_000, "1k"},
		{1_100, "1.1k"},
		{9_999, "9.9k"},
		{10_000, "10k"},
		{12_345, "12k"},
		{99_999, "99k"},
		{123_456, "123k"},
		{999_999, "999k"},
		{1_000_000, "1M"},
		{1_550_000, "1.5M"},
		{12_345_678, "12M"},
		{123_456_789, "123M"},
		{1_234_567_890, "1.2B"},
		{999_999_999_999, "999.9B"},
		{18_446_744_073_709_551_615, "18446744073.7B"},
	}
	for _, tt := range tests {
		if got := Human(tt.in); got != tt.want {
			t.Errorf("Human(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat_PadsToWidth(t *testing.T) {
	tests := map[uint64]string{
		5:         "   5",
		999:       " 999",
		9_999:     "9.9k",
		123_456:   "123k",
		1_234_567: "1.2M",
	}
	for in, want := range tests {
		if got := Format(in); got != want {
			t.Errorf("Format(%d) = %q, want %q", in, got, want)
		}
	}
}
