// Package httpkit re-exports the platform router seam and mounts module route trees
package httpkit

import (
	phttp "astroref/internal/platform/net/http"
)

type (
	// Router is the platform router seam
	Router = phttp.Router

	// Handler is the platform handler type
	Handler = phttp.Handler
)
