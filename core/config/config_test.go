// File: config_test.go
// Title: Configuration Tests
// Description: Tests loading from TOML and YAML, defaults, environment
//              overrides, dot-notation access and discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-17

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/strx/core/error"
)

const testTOML = `
[log]
level = "debug"
format = "json"

[pad]
string = "0"

[number]
decimals = 2
decimal_point = ","
thousands_separator = "."

[words]
delimiters = ["-", "_"]
verbose = true
`

const testYAML = `
log:
  level: debug
  format: json
pad:
  string: "0"
number:
  decimals: 2
  decimal_point: ","
  thousands_separator: "."
words:
  delimiters: ["-", "_"]
  verbose: true
`

type snapshot struct {
	Level, Format, Pad, Point, Sep string
	Decimals                       int
	Delimiters                     []string
	Verbose                        bool
}

func snapshotOf(c *Config) snapshot {
	return snapshot{
		Level:      c.GetString("log.level"),
		Format:     c.GetString("log.format"),
		Pad:        c.GetString("pad.string"),
		Point:      c.GetString("number.decimal_point"),
		Sep:        c.GetString("number.thousands_separator"),
		Decimals:   c.GetInt("number.decimals"),
		Delimiters: c.GetStringSlice("words.delimiters"),
		Verbose:    c.GetBool("words.verbose"),
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTOMLAndYAMLAreEquivalent(t *testing.T) {
	dir := t.TempDir()

	fromTOML, err := Load(writeFile(t, dir, "strx.toml", testTOML))
	if err != nil {
		t.Fatalf("Load(toml) error = %v", err)
	}
	fromYAML, err := Load(writeFile(t, dir, "strx.yaml", testYAML))
	if err != nil {
		t.Fatalf("Load(yaml) error = %v", err)
	}

	if fromTOML.Format() != FormatTOML || fromYAML.Format() != FormatYAML {
		t.Errorf("formats = %v, %v", fromTOML.Format(), fromYAML.Format())
	}

	want := snapshot{
		Level: "debug", Format: "json", Pad: "0", Point: ",", Sep: ".",
		Decimals: 2, Delimiters: []string{"-", "_"}, Verbose: true,
	}
	if diff := cmp.Diff(want, snapshotOf(fromTOML)); diff != "" {
		t.Errorf("TOML mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(snapshotOf(fromTOML), snapshotOf(fromYAML)); diff != "" {
		t.Errorf("TOML and YAML differ (-toml +yaml):\n%s", diff)
	}
}

func TestLoadFromString(t *testing.T) {
	c, err := LoadFromString(testYAML, FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.GetInt("number.decimals"); got != 2 {
		t.Errorf("GetInt(number.decimals) = %d, want 2", got)
	}
	if c.FilePath() != "" {
		t.Errorf("FilePath() = %q, want empty", c.FilePath())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.toml", "[log\nlevel = ")

	tests := []struct {
		name string
		path string
		code mdwerror.Code
	}{
		{"empty path", "  ", mdwerror.CodeValidationFailed},
		{"missing file", filepath.Join(dir, "nope.toml"), mdwerror.CodeNotFound},
		{"malformed file", broken, mdwerror.CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "strx.toml", "[log]\nlevel = \"info\"\n")

	c, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"log.level":       "warn",
			"log.format":      "text",
			"number.decimals": 3,
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := c.GetString("log.level"); got != "info" {
		t.Errorf("file value should win over default, got %q", got)
	}
	if got := c.GetString("log.format"); got != "text" {
		t.Errorf("default in an existing table missing, got %q", got)
	}
	if got := c.GetInt("number.decimals"); got != 3 {
		t.Errorf("default in a new table missing, got %d", got)
	}
}

func TestGetterDefaults(t *testing.T) {
	c := New("", nil)

	if got := c.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q", got)
	}
	if got := c.GetInt("missing", 7); got != 7 {
		t.Errorf("GetInt default = %d", got)
	}
	if got := c.GetBool("missing", true); !got {
		t.Error("GetBool default = false")
	}
	if got := c.GetStringSlice("missing", []string{"a"}); !cmp.Equal(got, []string{"a"}) {
		t.Errorf("GetStringSlice default = %v", got)
	}
	if c.Has("missing") {
		t.Error("Has(missing) = true")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("STRX_NUMBER_DECIMALS", "4")
	t.Setenv("STRX_PAD_STRING", "*")
	t.Setenv("STRX_WORDS_DELIMITERS", "-,.")

	c, err := LoadFromString(testTOML, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	c.envPrefix = "STRX"

	if got := c.GetInt("number.decimals"); got != 4 {
		t.Errorf("GetInt = %d, want env override 4", got)
	}
	if got := c.GetString("pad.string"); got != "*" {
		t.Errorf("GetString = %q, want env override *", got)
	}
	if diff := cmp.Diff([]string{"-", "."}, c.GetStringSlice("words.delimiters")); diff != "" {
		t.Errorf("GetStringSlice mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatEnvKey(t *testing.T) {
	c := New("strx", nil)
	if got := c.formatEnvKey("number.decimal_point"); got != "STRX_NUMBER_DECIMAL_POINT" {
		t.Errorf("formatEnvKey = %q", got)
	}
	c = New("", nil)
	if got := c.formatEnvKey("log.level"); got != "LOG_LEVEL" {
		t.Errorf("formatEnvKey = %q", got)
	}
}

func TestSetAndHas(t *testing.T) {
	c := New("", nil)
	c.Set("a.b.c", 1)
	c.Set("a.d", "x")

	if !c.Has("a.b.c") || !c.Has("a.d") {
		t.Error("Has should see values created by Set")
	}
	if got := c.GetInt("a.b.c"); got != 1 {
		t.Errorf("GetInt(a.b.c) = %d", got)
	}
	if c.Has("a.b.c.d") {
		t.Error("Has should not descend into scalars")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	empty := t.TempDir()
	writeFile(t, dir, "strx.yaml", testYAML)

	opts := DiscoveryOptions{
		Paths:     []string{empty, dir},
		Filenames: []string{"strx"},
		EnvPrefix: "STRX",
	}

	c, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if c.FilePath() != filepath.Join(dir, "strx.yaml") {
		t.Errorf("FilePath() = %q", c.FilePath())
	}
	if got := c.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q", got)
	}
}

func TestDiscoverNotFound(t *testing.T) {
	opts := DiscoveryOptions{
		Paths:     []string{t.TempDir()},
		Filenames: []string{"strx"},
		Defaults:  map[string]interface{}{"log.level": "warn"},
	}

	c, err := Discover(opts)
	if err != nil {
		t.Fatalf("optional Discover() error = %v", err)
	}
	if got := c.GetString("log.level"); got != "warn" {
		t.Errorf("defaults not applied, log.level = %q", got)
	}

	opts.Required = true
	if _, err := Discover(opts); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("required Discover() error = %v, want NOT_FOUND", err)
	}
}

func TestListPossibleConfigFiles(t *testing.T) {
	got := ListPossibleConfigFiles(DiscoveryOptions{
		Paths:      []string{"a", "b"},
		Filenames:  []string{"strx"},
		Extensions: []string{".toml", ".yaml"},
	})
	want := []string{
		filepath.Join("a", "strx.toml"),
		filepath.Join("a", "strx.yaml"),
		filepath.Join("b", "strx.toml"),
		filepath.Join("b", "strx.yaml"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListPossibleConfigFiles mismatch (-want +got):\n%s", diff)
	}
}
