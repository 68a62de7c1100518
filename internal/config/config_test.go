package config

import (
	"os"
	"testing"
)

func TestGetenv(t *testing.T) {
	os.Unsetenv("TEST_GETENV")
	if got := getenv("TEST_GETENV", "default"); got != "default" {
		t.Errorf("Expected default value 'default', got '%s'", got)
	}

	os.Setenv("TEST_GETENV", "test-value")
	defer os.Unsetenv("TEST_GETENV")
	if got := getenv("TEST_GETENV", "default"); got != "test-value" {
		t.Errorf("Expected 'test-value', got '%s'", got)
	}
}

func TestGetenvInt(t *testing.T) {
	os.Unsetenv("TEST_GETENV_INT")
	if got := getenvInt("TEST_GETENV_INT", 42); got != 42 {
		t.Errorf("Expected default value 42, got %d", got)
	}

	os.Setenv("TEST_GETENV_INT", "100")
	if got := getenvInt("TEST_GETENV_INT", 42); got != 100 {
		t.Errorf("Expected 100, got %d", got)
	}

	os.Setenv("TEST_GETENV_INT", "invalid")
	if got := getenvInt("TEST_GETENV_INT", 42); got != 42 {
		t.Errorf("Expected default value 42 for invalid input, got %d", got)
	}
	os.Unsetenv("TEST_GETENV_INT")
}

func TestGetenvBool(t *testing.T) {
	os.Unsetenv("TEST_GETENV_BOOL")
	if got := getenvBool("TEST_GETENV_BOOL", true); got != true {
		t.Error("Expected default value true")
	}

	os.Setenv("TEST_GETENV_BOOL", "false")
	if got := getenvBool("TEST_GETENV_BOOL", true); got != false {
		t.Error("Expected false")
	}

	os.Setenv("TEST_GETENV_BOOL", "not-a-bool")
	if got := getenvBool("TEST_GETENV_BOOL", true); got != true {
		t.Error("Expected default value true for invalid input")
	}
	os.Unsetenv("TEST_GETENV_BOOL")
}

func TestLoadDefaults(t *testing.T) {
	keys := []string{
		"CATALOG_INPUT", "CATALOG_OUTPUT", "CATALOG_TAXONOMY_FILE",
		"CATALOG_TEMPLATES_FILE", "GLM_BASE_URL", "GLM_API_KEY",
		"SFTP_HOST", "SFTP_PORT", "SFTP_USER", "SFTP_PASS", "SFTP_DIR",
		"SFTP_INSECURE_IGNORE_HOSTKEY",
	}
	saved := map[string]string{}
	for _, k := range keys {
		saved[k] = os.Getenv(k)
		os.Unsetenv(k)
	}
	defer func() {
		for k, v := range saved {
			if v != "" {
				os.Setenv(k, v)
			}
		}
	}()

	cfg := Load()
	if cfg.InputPath != "EdX.csv" {
		t.Errorf("InputPath = %q", cfg.InputPath)
	}
	if cfg.OutputPath != "COURSE_CATALOG.csv" {
		t.Errorf("OutputPath = %q", cfg.OutputPath)
	}
	if cfg.SFTPPort != 22 {
		t.Errorf("SFTPPort = %d", cfg.SFTPPort)
	}
	if cfg.GLMAPIKey != "" {
		t.Errorf("GLMAPIKey should default to empty, got %q", cfg.GLMAPIKey)
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("CATALOG_INPUT", "/data/in.csv")
	os.Setenv("SFTP_PORT", "2222")
	os.Setenv("GLM_API_KEY", "secret")
	defer func() {
		os.Unsetenv("CATALOG_INPUT")
		os.Unsetenv("SFTP_PORT")
		os.Unsetenv("GLM_API_KEY")
	}()

	cfg := Load()
	if cfg.InputPath != "/data/in.csv" {
		t.Errorf("InputPath = %q", cfg.InputPath)
	}
	if cfg.SFTPPort != 2222 {
		t.Errorf("SFTPPort = %d", cfg.SFTPPort)
	}
	if cfg.GLMAPIKey != "secret" {
		t.Errorf("GLMAPIKey = %q", cfg.GLMAPIKey)
	}
}
