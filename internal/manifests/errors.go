package manifests

import (
	"fmt"

	"github.com/itssimple/manifest-report-site/internal/common"
)

// errUnusable marks documents that were fetched but could not be decoded.
var errUnusable = fmt.Errorf("%w: %w", common.ErrUnavailable, common.ErrorMalformedPayload)
