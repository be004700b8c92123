// Package queue defines message payloads exchanged over the message broker.
package queue

// PurchaseRecordedEvent is published after a purchase transaction has
// been committed.  It carries enough information for downstream
// consumers to journal or notify without querying the primary
// database.  Detail rows are summarized as a count; consumers that
// need line items read them from storage.
type PurchaseRecordedEvent struct {
	TransactionID int64  `json:"transaction_id"`
	CashierCode   string `json:"cashier_code"`
	StoreCode     string `json:"store_code"`
	POSID         string `json:"pos_id"`
	ItemCount     int    `json:"item_count"`
	TotalAmount   int64  `json:"total_amount"`
	RecordedAt    string `json:"recorded_at"`
}
