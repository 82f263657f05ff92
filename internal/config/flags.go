package config

import "github.com/spf13/pflag"

// Flags binds command-line flags that override loaded configuration.
//
// Supported flags (short forms):
//
//	-c string   path to JSON config file
//	-d string   cache folder
//	-k string   cache backend (fs, badger, sqlite)
//	-u string   S3 access key
//	-p string   S3 secret key
//	-e string   S3 endpoint (e.g., "http://127.0.0.1:9000/")
//	-b string   S3 bucket
//	-g string   S3 region
//	-a string   API listen address
//	   --public-base-url, --log-level, --log-format
type Flags struct {
	fs         *pflag.FlagSet
	configPath string
	values     Config
}

// RegisterFlags declares the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVarP(&f.configPath, "config", "c", "", "path to JSON config file")
	fs.StringVarP(&f.values.CacheFolder, "cache-folder", "d", "", "cache folder")
	fs.StringVarP(&f.values.CacheBackend, "cache-backend", "k", "", "cache backend: fs, badger or sqlite")
	fs.StringVarP(&f.values.S3AccessKey, "s3-access-key", "u", "", "S3 access key")
	fs.StringVarP(&f.values.S3SecretKey, "s3-secret-key", "p", "", "S3 secret key")
	fs.StringVarP(&f.values.S3Endpoint, "s3-endpoint", "e", "", "S3 endpoint")
	fs.StringVarP(&f.values.S3Bucket, "s3-bucket", "b", "", "S3 bucket")
	fs.StringVarP(&f.values.S3Region, "s3-region", "g", "", "S3 region")
	fs.StringVarP(&f.values.ListenAddr, "listen", "a", "", "API listen address")
	fs.StringVar(&f.values.PublicBaseURL, "public-base-url", "", "public base URL of the archive")
	fs.StringVar(&f.values.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.values.LogFormat, "log-format", "", "log format: text or json")

	return f
}

// ConfigPath returns the value of -c/--config.
func (f *Flags) ConfigPath() string {
	return f.configPath
}

// Apply copies every explicitly set flag onto cfg.
func (f *Flags) Apply(cfg *Config) {
	set := func(name string, dst *string, v string) {
		if f.fs.Changed(name) {
			*dst = v
		}
	}

	set("cache-folder", &cfg.CacheFolder, f.values.CacheFolder)
	set("cache-backend", &cfg.CacheBackend, f.values.CacheBackend)
	set("s3-access-key", &cfg.S3AccessKey, f.values.S3AccessKey)
	set("s3-secret-key", &cfg.S3SecretKey, f.values.S3SecretKey)
	set("s3-endpoint", &cfg.S3Endpoint, f.values.S3Endpoint)
	set("s3-bucket", &cfg.S3Bucket, f.values.S3Bucket)
	set("s3-region", &cfg.S3Region, f.values.S3Region)
	set("listen", &cfg.ListenAddr, f.values.ListenAddr)
	set("public-base-url", &cfg.PublicBaseURL, f.values.PublicBaseURL)
	set("log-level", &cfg.LogLevel, f.values.LogLevel)
	set("log-format", &cfg.LogFormat, f.values.LogFormat)
}

// Load resolves the full configuration: defaults, JSON, environment, flags.
func (f *Flags) Load() *Config {
	cfg := LoadConfig(f.configPath)
	f.Apply(cfg)
	return cfg
}
