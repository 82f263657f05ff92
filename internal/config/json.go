package config

import (
	"encoding/json"
	"os"

	"github.com/adrg/xdg"
)

// xdgConfigName is looked up under the XDG config directories.
const xdgConfigName = "manifest-report/config.json"

// JsonConfig is the on-disk shape of the configuration file.
type JsonConfig struct {
	CacheFolder   string `json:"cache_folder"`
	CacheBackend  string `json:"cache_backend"`
	S3AccessKey   string `json:"s3_access_key"`
	S3SecretKey   string `json:"s3_secret_key"`
	S3Endpoint    string `json:"s3_endpoint"`
	S3Bucket      string `json:"s3_bucket"`
	S3Region      string `json:"s3_region"`
	PublicBaseURL string `json:"public_base_url"`
	ListenAddr    string `json:"listen_addr"`
	LogLevel      string `json:"log_level"`
	LogFormat     string `json:"log_format"`
}

// searchConfigFile is swapped in tests.
var searchConfigFile = xdg.SearchConfigFile

func resolveJsonPath(path string) string {
	if path != "" {
		return path
	}
	found, err := searchConfigFile(xdgConfigName)
	if err != nil {
		return ""
	}
	return found
}

// parseJson overlays values from the JSON file at path onto config.
// An empty path loads nothing. If the file cannot be read or contains
// invalid JSON, the function panics.
func parseJson(config *Config, path string) {
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay(&config.CacheFolder, c.CacheFolder)
	overlay(&config.CacheBackend, c.CacheBackend)
	overlay(&config.S3AccessKey, c.S3AccessKey)
	overlay(&config.S3SecretKey, c.S3SecretKey)
	overlay(&config.S3Endpoint, c.S3Endpoint)
	overlay(&config.S3Bucket, c.S3Bucket)
	overlay(&config.S3Region, c.S3Region)
	overlay(&config.PublicBaseURL, c.PublicBaseURL)
	overlay(&config.ListenAddr, c.ListenAddr)
	overlay(&config.LogLevel, c.LogLevel)
	overlay(&config.LogFormat, c.LogFormat)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
