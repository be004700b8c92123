package handler

import (
	"context"  // context for propagating request deadlines to the repository
	"errors"   // for errors.Is comparisons
	"log"      // logging of lookup failures, mirrored to the request log
	"net/http" // HTTP status codes
	"strconv"  // parsing path parameters

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/asukapos/pos-backend/internal/model"
	"github.com/asukapos/pos-backend/internal/repository"
)

// ProductFinder is the catalog access the product handler needs.  It
// is satisfied by *repository.ProductRepo and by test doubles.
type ProductFinder interface {
	GetByCode(ctx context.Context, code int64) (*model.Product, error)
}

// ProductHandler serves catalog lookups for the register: a scanned
// barcode comes in as a path parameter and the matching master row
// goes back as JSON.
type ProductHandler struct {
	Products ProductFinder // access to the product master
}

// NewProductHandler constructs a ProductHandler with the provided
// catalog access.  The dependency must be non-nil.
func NewProductHandler(products ProductFinder) *ProductHandler {
	if products == nil {
		panic("nil ProductFinder passed to NewProductHandler")
	}
	return &ProductHandler{Products: products}
}

// GetProduct handles GET /api/products/:code.  The code must parse as
// an integer; otherwise 400 is returned without touching storage.  A
// well-formed code with no catalog row yields 404.  Storage failures
// yield 500 with the driver message in the body.  On success the
// matched row is returned exactly as stored.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	raw := c.Param("code")
	code, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("invalid product code: %q", raw)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product code must be numeric"})
	}
	p, err := h.Products.GetByCode(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			log.Printf("product not registered: %d", code)
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product is not registered in the master"})
		}
		log.Printf("product lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error: " + err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}
