package config

import (
	"os"
	"strconv"
)

type Config struct {
	// I/O
	InputPath  string
	OutputPath string

	// Optional YAML overrides for the static tables.
	TaxonomyPath  string
	TemplatesPath string

	// GLM enrichment (off when the key is empty)
	GLMBaseURL string
	GLMAPIKey  string

	// SFTP drop
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool
}

func Load() Config {
	return Config{
		InputPath:  getenv("CATALOG_INPUT", "EdX.csv"),
		OutputPath: getenv("CATALOG_OUTPUT", "COURSE_CATALOG.csv"),

		TaxonomyPath:  os.Getenv("CATALOG_TAXONOMY_FILE"),
		TemplatesPath: os.Getenv("CATALOG_TEMPLATES_FILE"),

		GLMBaseURL: getenv("GLM_BASE_URL", "https://open.bigmodel.cn/api/paas/v4"),
		GLMAPIKey:  os.Getenv("GLM_API_KEY"),

		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/upload"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", true),
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
