package catalog

import "errors"

var (
	// ErrUnknownProduct is returned when a string does not name a catalog product.
	ErrUnknownProduct = errors.New("catalog: unknown product")
	// ErrUnknownGuide is returned when a string does not name a CRM guide.
	ErrUnknownGuide = errors.New("catalog: unknown guide")
)
