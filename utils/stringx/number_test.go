// File: number_test.go
// Title: Unit Tests for Number Formatting and Integer Parsing
// Description: Table-driven tests for FormatNumber, FormatNumberWith and
//              ToInt.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-17
// Modified: 2025-10-17

package stringx

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{"grouped with decimals", 1234567.891, 2, "1,234,567.89"},
		{"half rounds away from zero", 1.005, 2, "1.01"},
		{"half rounds away from zero negative", -2.5, 0, "-3"},
		{"rounds to negative zero", -0.4, 0, "0"},
		{"small negative with decimals", -0.004, 2, "0.00"},
		{"negative grouped", -1234.5, 1, "-1,234.5"},
		{"zero", 0, 2, "0.00"},
		{"no grouping below thousand", 999.999, 2, "1,000.00"},
		{"padding decimals", 12, 3, "12.000"},
		{"negative decimals", 1234.56, -1, "1,235"},
		{"exact thousand", 1000, 0, "1,000"},
		{"millions", 1000000, 0, "1,000,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.value, tt.decimals); got != tt.want {
				t.Errorf("FormatNumber(%v, %d) = %q; want %q", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestFormatNumberIntegerTypes(t *testing.T) {
	if got := FormatNumber(1234, 2); got != "1,234.00" {
		t.Errorf("FormatNumber(int 1234, 2) = %q", got)
	}
	if got := FormatNumber(int8(-12), 0); got != "-12" {
		t.Errorf("FormatNumber(int8 -12, 0) = %q", got)
	}
	if got := FormatNumber(uint32(4000000), 0); got != "4,000,000" {
		t.Errorf("FormatNumber(uint32 4000000, 0) = %q", got)
	}
	if got := FormatNumber(float32(0.5), 0); got != "1" {
		t.Errorf("FormatNumber(float32 0.5, 0) = %q", got)
	}
}

type cents int64

func TestFormatNumberKeepsPrecision(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"int64 above 2^53", FormatNumber(int64(9007199254740993), 0), "9,007,199,254,740,993"},
		{"min int64", FormatNumber(int64(math.MinInt64), 0), "-9,223,372,036,854,775,808"},
		{"max uint64", FormatNumber(uint64(math.MaxUint64), 0), "18,446,744,073,709,551,615"},
		{"large int with decimals", FormatNumber(int64(9007199254740993), 2), "9,007,199,254,740,993.00"},
		{"named integer type", FormatNumber(cents(123456789), 0), "123,456,789"},
		{"float32 half rounds away from zero", FormatNumber(float32(1.005), 2), "1.01"},
		{"float32 negative", FormatNumber(float32(-2.675), 2), "-2.68"},
		{"float32 NaN", FormatNumber(float32(math.NaN()), 2), "NaN"},
		{"float32 infinity", FormatNumber(float32(math.Inf(-1)), 2), "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q; want %q", tt.got, tt.want)
			}
		})
	}
}

func TestFormatNumberWith(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		point    string
		sep      string
		want     string
	}{
		{"european", 1234567.891, 2, ",", ".", "1.234.567,89"},
		{"no separator", 1234567.891, 2, ".", "", "1234567.89"},
		{"multi byte separator", 1234567, 0, ".", "' ", "1' 234' 567"},
		{"space separator", 98765.4321, 1, ".", " ", "98 765.4"},
		{"no decimals ignores point", 1234, 0, "DOT", ",", "1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatNumberWith(tt.value, tt.decimals, tt.point, tt.sep)
			if got != tt.want {
				t.Errorf("FormatNumberWith(%v, %d, %q, %q) = %q; want %q",
					tt.value, tt.decimals, tt.point, tt.sep, got, tt.want)
			}
		})
	}
}

func TestFormatNumberNonFinite(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.value, 2); got != tt.want {
			t.Errorf("FormatNumber(%v, 2) = %q; want %q", tt.value, got, tt.want)
		}
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"42", 42, true},
		{"0", 0, true},
		{"-7", -7, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"007", 0, false},
		{"+5", 0, false},
		{"-0", 0, false},
		{" 5", 0, false},
		{"5 ", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"1e3", 0, false},
		{"9223372036854775808", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ToInt(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ToInt(%q) = (%d, %v); want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
