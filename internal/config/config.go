package config

import (
	"os"
	"path/filepath"

	"github.com/itssimple/manifest-report-site/internal/common"
)

// Config holds runtime settings.
//
// Fields:
//   - CacheFolder: root of the local cache (file backend directory, or the
//     directory holding the badger/sqlite database).
//   - CacheBackend: fs, badger or sqlite.
//   - S3AccessKey / S3SecretKey: credentials for the archive endpoint.
//   - S3Endpoint / S3Bucket / S3Region: object storage settings.
//   - PublicBaseURL: public prefix for archived manifest links.
//   - ListenAddr: bind address of the JSON API.
//   - LogLevel / LogFormat: see logging.New.
type Config struct {
	CacheFolder   string
	CacheBackend  string
	S3AccessKey   string
	S3SecretKey   string
	S3Endpoint    string
	S3Bucket      string
	S3Region      string
	PublicBaseURL string
	ListenAddr    string
	LogLevel      string
	LogFormat     string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.CacheFolder = defaultCacheFolder()
	c.CacheBackend = "fs"
	c.S3Endpoint = "http://127.0.0.1:9000/"
	c.S3Bucket = common.DefaultBucket
	c.S3Region = common.DefaultRegion
	c.PublicBaseURL = common.DefaultPublicBaseURL
	c.ListenAddr = ":8080"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

func defaultCacheFolder() string {
	cwd, err := os.Getwd()
	if err != nil {
		return common.DefaultCacheFolderName
	}
	return filepath.Join(cwd, common.DefaultCacheFolderName)
}

// LoadConfig builds a Config by applying defaults, then the JSON file at
// path (or the XDG config file when path is empty), then the environment.
// Flags are applied separately by the caller once they are parsed.
func LoadConfig(path string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, resolveJsonPath(path))
	parseEnv(cfg)
	return cfg
}
