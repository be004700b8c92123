package handler

import (
	"context"  // context for the repository call and the event publish
	"log"      // logging of recording failures
	"net/http" // HTTP status codes
	"time"     // timestamps for the recorded event

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/asukapos/pos-backend/internal/model"
	"github.com/asukapos/pos-backend/internal/queue"
)

// PurchaseRecorder is the storage access the purchase handler needs.
// It is satisfied by *repository.TransactionRepo and by test doubles.
type PurchaseRecorder interface {
	Record(ctx context.Context, rec *model.Transaction, items []model.TransactionDetail) (int64, error)
}

// PurchaseHandler records purchase transactions submitted by the
// register.  Each request is persisted atomically: header, detail
// rows and computed total either all land or none do.
type PurchaseHandler struct {
	Store PurchaseRecorder // access to transactions and transaction_details
	// Publish, when non-nil, is invoked after a successful commit with
	// a purchase.recorded event.  Publishing is best-effort: failures
	// are logged by the publisher and never affect the response.
	Publish func(ctx context.Context, ev queue.PurchaseRecordedEvent) error
}

// NewPurchaseHandler constructs a PurchaseHandler with the provided
// storage access.  The store must be non-nil; publish may be nil to
// disable event publishing.
func NewPurchaseHandler(store PurchaseRecorder, publish func(ctx context.Context, ev queue.PurchaseRecordedEvent) error) *PurchaseHandler {
	if store == nil {
		panic("nil PurchaseRecorder passed to NewPurchaseHandler")
	}
	return &PurchaseHandler{Store: store, Publish: publish}
}

// purchaseItem is one line item as submitted by the register.  The
// fields are the caller's denormalized snapshot of the catalog row;
// they are persisted as-is without re-validation against the master.
type purchaseItem struct {
	ItemID      int64  `json:"item_id"`
	ProductCode int64  `json:"product_code"`
	ProductName string `json:"product_name"`
	Price       int64  `json:"price"`
}

// purchaseRequest is the body of POST /api/purchase.  Store code and
// POS id fall back to fixed defaults when omitted; an absent or empty
// cashier code becomes the unattended-register sentinel.
type purchaseRequest struct {
	CashierCode string         `json:"cashier_code"`
	StoreCode   string         `json:"store_code"`
	POSID       string         `json:"pos_id"`
	Items       []purchaseItem `json:"items"`
}

// Purchase handles POST /api/purchase.  It applies the request
// defaults, persists the header and detail rows in one database
// transaction and returns the computed total.  An empty item list is
// accepted and produces a header with total 0.  Any storage failure
// rolls the whole transaction back and yields 500 with the underlying
// message.
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	var body purchaseRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.CashierCode == "" {
		body.CashierCode = model.DefaultCashierCode
	}
	if body.StoreCode == "" {
		body.StoreCode = model.DefaultStoreCode
	}
	if body.POSID == "" {
		body.POSID = model.DefaultPOSID
	}

	rec := model.Transaction{
		TransactionDate: time.Now().UTC(),
		CashierCode:     body.CashierCode,
		StoreCode:       body.StoreCode,
		POSID:           body.POSID,
	}
	items := make([]model.TransactionDetail, len(body.Items))
	for i, it := range body.Items {
		items[i] = model.TransactionDetail{
			ItemID:      it.ItemID,
			ProductCode: it.ProductCode,
			ProductName: it.ProductName,
			Price:       it.Price,
		}
	}

	total, err := h.Store.Record(c.Request().Context(), &rec, items)
	if err != nil {
		log.Printf("purchase recording failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "purchase failed: " + err.Error()})
	}

	if h.Publish != nil {
		ev := queue.PurchaseRecordedEvent{
			TransactionID: rec.ID,
			CashierCode:   rec.CashierCode,
			StoreCode:     rec.StoreCode,
			POSID:         rec.POSID,
			ItemCount:     len(items),
			TotalAmount:   total,
			RecordedAt:    rec.TransactionDate.Format(time.RFC3339),
		}
		// Detached from the request context so a slow broker cannot
		// delay or cancel the publish after the response is sent.
		go func() { _ = h.Publish(context.Background(), ev) }()
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "total_amount": total})
}
