package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

type testCLI struct {
	DB      string `name:"db" default:"default.db"`
	NoColor bool   `name:"no-color"`

	Report struct {
		Type string `default:"total"`
	} `cmd:""`
	List struct{} `cmd:""`
}

func parse(t *testing.T, yamlText string, args ...string) *testCLI {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yamlText), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cli testCLI
	parser, err := kong.New(&cli, kong.Configuration(YAML, path), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}
	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("failed to parse %v: %v", args, err)
	}
	return &cli
}

func TestYAMLResolvesFlags(t *testing.T) {
	cli := parse(t, "db: from-yaml.db\nno_color: true\n", "list")
	if cli.DB != "from-yaml.db" {
		t.Errorf("DB = %q, want from-yaml.db", cli.DB)
	}
	if !cli.NoColor {
		t.Error("NoColor not resolved from snake_case key")
	}
}

func TestYAMLKebabKey(t *testing.T) {
	cli := parse(t, "no-color: true\n", "list")
	if !cli.NoColor {
		t.Error("NoColor not resolved from kebab-case key")
	}
}

func TestFlagsOverrideYAML(t *testing.T) {
	cli := parse(t, "db: from-yaml.db\n", "--db", "flag.db", "list")
	if cli.DB != "flag.db" {
		t.Errorf("DB = %q, want flag.db", cli.DB)
	}
}

func TestYAMLCommandScope(t *testing.T) {
	cli := parse(t, "report:\n  type: month\n", "report")
	if cli.Report.Type != "month" {
		t.Errorf("Report.Type = %q, want month", cli.Report.Type)
	}
}

func TestYAMLEmptyFile(t *testing.T) {
	cli := parse(t, "", "list")
	if cli.DB != "default.db" {
		t.Errorf("DB = %q, want default", cli.DB)
	}
}

func TestYAMLInvalid(t *testing.T) {
	if _, err := YAML(strings.NewReader("db: [unclosed")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("HABITLOG_TEST_FROM_DOTENV=yes\nHABITLOG_TEST_PRESET=dotenv\n"), 0600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv("HABITLOG_TEST_PRESET", "shell")
	t.Setenv("HABITLOG_TEST_FROM_DOTENV", "")
	os.Unsetenv("HABITLOG_TEST_FROM_DOTENV")

	if err := LoadEnv(filepath.Join(dir, "missing.env"), envFile); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if got := os.Getenv("HABITLOG_TEST_FROM_DOTENV"); got != "yes" {
		t.Errorf("HABITLOG_TEST_FROM_DOTENV = %q, want yes", got)
	}
	if got := os.Getenv("HABITLOG_TEST_PRESET"); got != "shell" {
		t.Errorf("existing variable overridden: %q", got)
	}
}
