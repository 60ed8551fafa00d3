package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/oguzk/mobilebill/internal/middleware"
	"github.com/oguzk/mobilebill/internal/models"
	"github.com/oguzk/mobilebill/internal/service"
)

// BillHandlers handles bill query and mutation HTTP requests.
type BillHandlers struct {
	bills *service.BillService
}

// NewBillHandlers creates a new BillHandlers.
func NewBillHandlers(billService *service.BillService) *BillHandlers {
	return &BillHandlers{bills: billService}
}

// RegisterPublicRoutes registers the routes that require no authentication.
func (h *BillHandlers) RegisterPublicRoutes(router *mux.Router) {
	router.HandleFunc("/website/pay-bill", h.PayBill).Methods(http.MethodPost)
}

// RegisterProtectedRoutes registers the routes behind bearer authentication.
func (h *BillHandlers) RegisterProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/query-bill", h.QueryBill).Methods(http.MethodGet)
	router.HandleFunc("/query-bill-detailed", h.QueryBillDetailed).Methods(http.MethodGet)
	router.HandleFunc("/banking-app/query-bill", h.QueryUnpaidBills).Methods(http.MethodGet)
	router.HandleFunc("/website/admin/add-bill", h.AddBill).Methods(http.MethodPost)
}

// QueryBill returns the total and paid status of one bill for the effective
// subscriber and the required month parameter.
func (h *BillHandlers) QueryBill(w http.ResponseWriter, r *http.Request) {
	authenticated := middleware.SubscriberNo(r.Context())
	requested := r.URL.Query().Get("subscriber_no")
	month := r.URL.Query().Get("month")

	bill, err := h.bills.QuerySummary(r.Context(), authenticated, requested, month)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"bill_total":  bill.Total,
		"paid_status": bill.Paid,
	})
}

// QueryBillDetailed returns one page of (total, details) rows.
//
// The month parameter is optional here, unlike QueryBill. An absent month
// queries the empty string and matches nothing. An unparseable page falls
// back to 1, as the original did.
func (h *BillHandlers) QueryBillDetailed(w http.ResponseWriter, r *http.Request) {
	authenticated := middleware.SubscriberNo(r.Context())
	requested := r.URL.Query().Get("subscriber_no")
	month := r.URL.Query().Get("month")

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			page = p
		}
	}

	lines, err := h.bills.QueryDetailed(r.Context(), authenticated, requested, month, page)
	if err != nil {
		if errors.Is(err, service.ErrBillNotFound) {
			writeError(w, http.StatusNotFound, "No detailed bill found")
			return
		}
		writeServiceError(w, err)
		return
	}

	// The original serialized rows as two-element [total, details] tuples.
	detailed := make([][]interface{}, 0, len(lines))
	for _, line := range lines {
		detailed = append(detailed, []interface{}{line.Total, line.Details})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"detailed_bill": detailed})
}

// QueryUnpaidBills lists the months with unpaid bills for the effective
// subscriber.
func (h *BillHandlers) QueryUnpaidBills(w http.ResponseWriter, r *http.Request) {
	authenticated := middleware.SubscriberNo(r.Context())
	requested := r.URL.Query().Get("subscriber_no")

	months, err := h.bills.UnpaidMonths(r.Context(), authenticated, requested)
	if err != nil {
		if errors.Is(err, service.ErrNoUnpaidBills) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "No unpaid bills found for the subscriber"})
			return
		}
		writeServiceError(w, err)
		return
	}

	// One-element [month] tuples, matching the original row serialization.
	unpaid := make([][]string, 0, len(months))
	for _, month := range months {
		unpaid = append(unpaid, []string{month})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"unpaid_bills": unpaid})
}

type payBillRequest struct {
	SubscriberNo string `json:"subscriber_no"`
	Month        string `json:"month"`
}

// PayBill reports the payment status of a bill. It performs no mutation in
// any branch: already-paid bills report success and unpaid ones report an
// error, exactly as the original endpoint behaved.
func (h *BillHandlers) PayBill(w http.ResponseWriter, r *http.Request) {
	var req payBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	paid, err := h.bills.PayBill(r.Context(), req.SubscriberNo, req.Month)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if paid {
		writeJSON(w, http.StatusOK, map[string]string{
			"payment_status": "Successful",
			"message":        "Payment successful.",
		})
		return
	}
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"payment_status": "Error",
		"message":        "Invoice not paid.",
	})
}

type addBillRequest struct {
	SubscriberNo *string `json:"subscriber_no"`
	Month        *string `json:"month"`
	Total        *int64  `json:"total"`
	Details      *string `json:"details"`
	PaidStatus   *bool   `json:"paid_status"`
}

// AddBill inserts a bill on behalf of the admin account. All body fields are
// required; pointer fields distinguish absent keys from zero values.
func (h *BillHandlers) AddBill(w http.ResponseWriter, r *http.Request) {
	authenticated := middleware.SubscriberNo(r.Context())

	var req addBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SubscriberNo == nil || req.Month == nil || req.Total == nil || req.Details == nil || req.PaidStatus == nil {
		writeError(w, http.StatusBadRequest, "subscriber_no, month, total, details and paid_status are required")
		return
	}

	bill := &models.Bill{
		SubscriberNo: *req.SubscriberNo,
		Month:        *req.Month,
		Total:        *req.Total,
		Details:      *req.Details,
		Paid:         *req.PaidStatus,
	}
	if err := h.bills.AddBill(r.Context(), authenticated, bill); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"transaction_status": "Bill added successfully"})
}
