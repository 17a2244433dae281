package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Fixed REST namespace path under a WordPress site URL
const APIPathSuffix = "/wp-json/cwm/v1"

// Duration accepts YAML scalars in time.ParseDuration
// form ("30s") as well as plain second counts.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var sec int64
	if err := node.Decode(&sec); err == nil {
		*d = Duration(time.Duration(sec) * time.Second)
		return nil
	}
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(value)
	return nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

type Config struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

type APIConfig struct {
	// Explicit API base URL ; wins when non-empty, e.g.:
	// https://wallet.example.com/wp-json/cwm/v1
	BaseURL string `yaml:"base_url"`
	// WordPress site URL ; base URL falls back to site + suffix
	SiteURL string `yaml:"site_url"`
	// Per-request timeout
	Timeout Duration `yaml:"timeout"`
}

// ResolveBaseURL resolves the API base URL once, at startup:
// explicit value (trimmed) ; else site URL + fixed API path suffix ;
// else "". Unresolved, every request MUST fail fast with a
// configuration error instead of being sent to an undefined endpoint.
func (c *APIConfig) ResolveBaseURL() string {
	if base := strings.TrimSpace(c.BaseURL); base != "" {
		return strings.TrimSuffix(base, "/")
	}
	if site := strings.TrimSpace(c.SiteURL); site != "" {
		return strings.TrimSuffix(site, "/") + APIPathSuffix
	}
	return ""
}

type SessionConfig struct {
	// Durable credentials record path
	File string `yaml:"file"`
}

// ResolveFile defaults the credentials record
// to <user-config-dir>/vandapay/session.json
func (c *SessionConfig) ResolveFile() string {
	if file := strings.TrimSpace(c.File); file != "" {
		return file
	}
	base, err := os.UserConfigDir()
	if err != nil {
		// no home ; keep the session in memory only
		return ""
	}
	return filepath.Join(base, "vandapay", "session.json")
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
	JSON    bool   `yaml:"json"`
	File    string `yaml:"file"`
}

// LoadConfig reads the YAML configuration file (explicit [path],
// else $VANDAPAY_CONFIG, else <user-config-dir>/vandapay/config.yml
// when present), then applies VANDAPAY_* environment overrides.
// A missing file is not an error ; env alone may fully configure
// the client.
func LoadConfig(path string) (*Config, error) {

	cfg := &Config{
		API: APIConfig{
			Timeout: Duration(time.Second * 30),
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	explicit := path != ""
	if path == "" {
		path = os.Getenv("VANDAPAY_CONFIG")
	}
	if path == "" {
		if base, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(base, "vandapay", "config.yml")
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case os.IsNotExist(err) && !explicit:
			// optional ; skip
		default:
			return nil, err
		}
	}

	// environment wins
	setenv(&cfg.API.BaseURL, "VANDAPAY_API_BASE_URL")
	setenv(&cfg.API.SiteURL, "VANDAPAY_SITE_URL")
	setenv(&cfg.Session.File, "VANDAPAY_SESSION_FILE")
	setenv(&cfg.Log.Level, "VANDAPAY_LOG_LEVEL")
	setenv(&cfg.Log.File, "VANDAPAY_LOG_FILE")

	return cfg, nil
}

func setenv(dst *string, key string) {
	if value, ok := os.LookupEnv(key); ok {
		*dst = value
	}
}
