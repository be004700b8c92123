// Package repository defines error values that are reused across
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between expected outcomes (a product code
// with no catalog row) and genuine storage failures without
// string-matching on driver messages.
package repository

import "errors"

// ErrProductNotFound is returned when a well-formed product code has
// no matching row in the product master. Handlers should translate
// this into an HTTP 404 response; any other repository error maps
// to HTTP 500.
var ErrProductNotFound = errors.New("product not found")
