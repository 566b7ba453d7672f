package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12.345", 1234, true},
		{"12.346", 1235, true},
		{"1250", 125000, true},
		{".50", 50, true},
		{"0", 0, false},
		{"", 0, false},
		{"-5", 0, false},
		{"+5", 0, false},
		{"1.2.3", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ParseDecimalToCents(%q) = %d, %v; want %d", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseDecimalToCents(%q) expected error", tc.in)
		}
	}
}

func TestMoneyString(t *testing.T) {
	if got := (Money{Cents: 125000}).String(); got != "₺1250,00" {
		t.Fatalf("got %q", got)
	}
	if got := (Money{Cents: -7}).String(); got != "-₺0,07" {
		t.Fatalf("got %q", got)
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Money{Cents: 3000})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "3000" {
		t.Fatalf("marshal = %s", b)
	}
	var m Money
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m.Cents != 3000 {
		t.Fatalf("round trip = %d", m.Cents)
	}
}
