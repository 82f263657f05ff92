package common

const (
	// DefaultBucket is the bucket holding list.json and the versions/ tree.
	DefaultBucket = "manifest-archive"

	// DefaultRegion is the signing region used against the archive endpoint.
	DefaultRegion = "manifest-report"

	// DefaultPublicBaseURL is where archived manifests are publicly reachable.
	DefaultPublicBaseURL = "https://storage.manifest.report/manifest-archive"

	// DefaultCacheFolderName is created in the working directory when no
	// cache folder is configured.
	DefaultCacheFolderName = ".manifest-cache"
)
