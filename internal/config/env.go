package config

import "os"

// parseEnv overlays non-empty environment variables onto config.
func parseEnv(config *Config) {
	vars := []struct {
		name string
		dst  *string
	}{
		{"CACHEFOLDER", &config.CacheFolder},
		{"CACHEBACKEND", &config.CacheBackend},
		{"S3ACCESSKEY", &config.S3AccessKey},
		{"S3SECRETKEY", &config.S3SecretKey},
		{"S3ENDPOINT", &config.S3Endpoint},
		{"S3BUCKET", &config.S3Bucket},
		{"S3REGION", &config.S3Region},
		{"PUBLICBASEURL", &config.PublicBaseURL},
		{"LISTENADDR", &config.ListenAddr},
		{"LOGLEVEL", &config.LogLevel},
		{"LOGFORMAT", &config.LogFormat},
	}

	for _, v := range vars {
		if val, ok := os.LookupEnv(v.name); ok {
			overlay(v.dst, val)
		}
	}
}
