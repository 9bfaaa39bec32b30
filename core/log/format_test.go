// File: format_test.go
// Title: Log Format and Level Tests
// Description: Tests for level and format parsing and for the output of
//              each formatter.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"audit", LevelAudit, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLevelErrorMessage(t *testing.T) {
	_, err := ParseLevel("loud")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Type != "level" {
		t.Fatalf("ParseLevel error = %#v", err)
	}
	if err.Error() != "invalid level: loud" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestLevelShouldLog(t *testing.T) {
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug should not log at info")
	}
	if !LevelError.ShouldLog(LevelInfo) {
		t.Error("error should log at info")
	}
	if !LevelAudit.ShouldLog(LevelFatal) {
		t.Error("audit should always log")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Text", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v, wantErr %v", tt.input, got, err, tt.want, tt.wantErr)
		}
		if err == nil && got.String() != strings.ToLower(tt.input) {
			t.Errorf("%v.String() = %q", got, got.String())
		}
	}
}

func testEntry() *Entry {
	e := NewEntry(LevelWarn, "pad string empty")
	e.Timestamp = time.Date(2025, 10, 17, 8, 30, 0, 0, time.UTC)
	e.Logger = "strx"
	e.RequestID = "r1"
	e.WithField("op", "pad_left").WithField("len", 5)
	return e
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}
	want := "08:30:00 [WRN] {strx} (req=r1) pad string empty [len=5 op=pad_left]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestConsoleFormatterWithoutColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true

	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}
	text, _ := NewTextFormatter().Format(testEntry())
	if string(out) != string(text) {
		t.Errorf("Format() = %q, want %q", out, text)
	}
}

func TestConsoleFormatterKeepsMessage(t *testing.T) {
	out, err := NewConsoleFormatter().Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "WRN") || !strings.Contains(string(out), "pad string empty [len=5 op=pad_left]") {
		t.Errorf("Format() = %q", out)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	e := testEntry().WithError(errors.New("boom")).WithDuration(1500 * time.Microsecond)

	out, err := NewLogfmtFormatter().Format(e)
	if err != nil {
		t.Fatal(err)
	}
	want := `timestamp=2025-10-17T08:30:00Z level=warn message="pad string empty" logger=strx request_id=r1 len=5 op="pad_left" error="boom" duration_ms=1.500` + "\n"
	if string(out) != want {
		t.Errorf("Format() =\n%q\nwant\n%q", out, want)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := NewJSONFormatter().Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatal(err)
	}
	want := map[string]interface{}{
		"timestamp":  "2025-10-17T08:30:00Z",
		"level":      "warn",
		"message":    "pad string empty",
		"logger":     "strx",
		"request_id": "r1",
		"op":         "pad_left",
		"len":        float64(5),
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s = %v, want %v", k, data[k], v)
		}
	}
}

func TestJSONFormatterReservedKeysWin(t *testing.T) {
	e := testEntry().WithField("level", "spoofed")

	out, _ := NewJSONFormatter().Format(e)
	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatal(err)
	}
	if data["level"] != "warn" {
		t.Errorf("level = %v, want warn", data["level"])
	}
}
