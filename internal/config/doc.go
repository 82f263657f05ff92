// Package config loads runtime configuration for the manifest report tools.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file: the path given with -c/--config, otherwise
//     $XDG_CONFIG_HOME/manifest-report/config.json when it exists.
//  3. Environment variables (CACHEFOLDER, S3ACCESSKEY, S3SECRETKEY,
//     S3ENDPOINT, S3BUCKET, S3REGION, CACHEBACKEND, PUBLICBASEURL,
//     LISTENADDR, LOGLEVEL, LOGFORMAT).
//  4. Command-line flags that were explicitly set (see Flags.Apply).
//
// # JSON schema
//
//	{
//	  "cache_folder": "/var/cache/manifest-report",
//	  "cache_backend": "fs",
//	  "s3_access_key": "...",
//	  "s3_secret_key": "...",
//	  "s3_endpoint": "https://storage.manifest.report/",
//	  "s3_bucket": "manifest-archive",
//	  "s3_region": "manifest-report",
//	  "public_base_url": "https://storage.manifest.report/manifest-archive",
//	  "listen_addr": ":8080",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// Empty JSON values leave the previous value untouched.
package config
