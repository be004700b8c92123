package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/asukapos/pos-backend/internal/model"
	"github.com/asukapos/pos-backend/internal/queue"
)

// mockPurchaseRecorder captures the header and items passed to Record
// and simulates the repository: on success it assigns a generated id
// and returns the integer sum of the item prices.
type mockPurchaseRecorder struct {
	err       error
	lastRec   *model.Transaction
	lastItems []model.TransactionDetail
}

func (m *mockPurchaseRecorder) Record(_ context.Context, rec *model.Transaction, items []model.TransactionDetail) (int64, error) {
	m.lastRec = rec
	m.lastItems = items
	if m.err != nil {
		return 0, m.err
	}
	rec.ID = 42
	var total int64
	for _, d := range items {
		total += d.Price
	}
	rec.TotalAmount = total
	return total, nil
}

type purchaseResponse struct {
	Success     bool  `json:"success"`
	TotalAmount int64 `json:"total_amount"`
}

func postPurchase(h *PurchaseHandler, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/purchase", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h.Purchase(c)
}

func TestPurchase(t *testing.T) {
	testCases := []struct {
		name               string
		body               string
		store              *mockPurchaseRecorder
		expectedStatusCode int
		expectedTotal      int64
		checkStore         func(t *testing.T, store *mockPurchaseRecorder)
	}{
		{
			name: "Defaults applied and total summed",
			body: `{"items":[{"item_id":1,"product_code":1234567890,"product_name":"ソフラン","price":300},{"item_id":2,"product_code":2345678901,"product_name":"タイガー歯ブラシ","price":200}]}`,
			store:              &mockPurchaseRecorder{},
			expectedStatusCode: http.StatusOK,
			expectedTotal:      500,
			checkStore: func(t *testing.T, store *mockPurchaseRecorder) {
				assert.Equal(t, "9999999999", store.lastRec.CashierCode)
				assert.Equal(t, "30", store.lastRec.StoreCode)
				assert.Equal(t, "90", store.lastRec.POSID)
				assert.Len(t, store.lastItems, 2)
				assert.Equal(t, "ソフラン", store.lastItems[0].ProductName)
			},
		},
		{
			name:               "Submitted codes preserved",
			body:               `{"cashier_code":"0000000001","store_code":"12","pos_id":"34","items":[{"item_id":3,"product_code":3456789012,"product_name":"四ツ谷サイダー","price":160}]}`,
			store:              &mockPurchaseRecorder{},
			expectedStatusCode: http.StatusOK,
			expectedTotal:      160,
			checkStore: func(t *testing.T, store *mockPurchaseRecorder) {
				assert.Equal(t, "0000000001", store.lastRec.CashierCode)
				assert.Equal(t, "12", store.lastRec.StoreCode)
				assert.Equal(t, "34", store.lastRec.POSID)
			},
		},
		{
			name:               "Empty item list is accepted",
			body:               `{"cashier_code":"0000000001","items":[]}`,
			store:              &mockPurchaseRecorder{},
			expectedStatusCode: http.StatusOK,
			expectedTotal:      0,
			checkStore: func(t *testing.T, store *mockPurchaseRecorder) {
				assert.Len(t, store.lastItems, 0)
			},
		},
		{
			name:               "Negative prices pass through",
			body:               `{"items":[{"item_id":1,"product_code":1,"product_name":"returned item","price":-100},{"item_id":2,"product_code":2,"product_name":"item","price":300}]}`,
			store:              &mockPurchaseRecorder{},
			expectedStatusCode: http.StatusOK,
			expectedTotal:      200,
		},
		{
			name:               "Storage failure yields 500 with the underlying message",
			body:               `{"items":[{"item_id":1,"product_code":1,"product_name":"x","price":100}]}`,
			store:              &mockPurchaseRecorder{err: errors.New("deadlock found")},
			expectedStatusCode: http.StatusInternalServerError,
		},
		{
			name:               "Malformed body is rejected before storage",
			body:               `{"items":`,
			store:              &mockPurchaseRecorder{},
			expectedStatusCode: http.StatusBadRequest,
			checkStore: func(t *testing.T, store *mockPurchaseRecorder) {
				assert.Nil(t, store.lastRec)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewPurchaseHandler(tc.store, nil)
			rec, err := postPurchase(h, tc.body)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedStatusCode, rec.Code)

			if tc.expectedStatusCode == http.StatusOK {
				var resp purchaseResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.True(t, resp.Success)
				assert.Equal(t, tc.expectedTotal, resp.TotalAmount)
			} else {
				var errResp map[string]string
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.NotEmpty(t, errResp["error"])
				if tc.store.err != nil {
					assert.Contains(t, errResp["error"], tc.store.err.Error())
				}
			}
			if tc.checkStore != nil {
				tc.checkStore(t, tc.store)
			}
		})
	}
}

func TestPurchasePublishesEvent(t *testing.T) {
	events := make(chan queue.PurchaseRecordedEvent, 1)
	publish := func(_ context.Context, ev queue.PurchaseRecordedEvent) error {
		events <- ev
		return nil
	}
	h := NewPurchaseHandler(&mockPurchaseRecorder{}, publish)

	rec, err := postPurchase(h, `{"items":[{"item_id":1,"product_code":1234567890,"product_name":"ソフラン","price":300}]}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	select {
	case ev := <-events:
		assert.Equal(t, int64(42), ev.TransactionID)
		assert.Equal(t, int64(300), ev.TotalAmount)
		assert.Equal(t, 1, ev.ItemCount)
		assert.Equal(t, "9999999999", ev.CashierCode)
	case <-time.After(time.Second):
		t.Fatal("purchase.recorded event was not published")
	}
}

func TestPurchaseDoesNotPublishOnFailure(t *testing.T) {
	events := make(chan queue.PurchaseRecordedEvent, 1)
	publish := func(_ context.Context, ev queue.PurchaseRecordedEvent) error {
		events <- ev
		return nil
	}
	h := NewPurchaseHandler(&mockPurchaseRecorder{err: errors.New("connection refused")}, publish)

	rec, err := postPurchase(h, `{"items":[{"item_id":1,"product_code":1,"product_name":"x","price":100}]}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	select {
	case <-events:
		t.Fatal("no event must be published when recording fails")
	case <-time.After(50 * time.Millisecond):
	}
}
