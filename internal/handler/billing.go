package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/societyops/maintenance-engine/internal/domain"
	"github.com/societyops/maintenance-engine/internal/service"
	"github.com/societyops/maintenance-engine/pkg/response"
)

type BillingHandler struct {
	service   *service.BillingService
	validator *validator.Validate
}

func NewBillingHandler(service *service.BillingService) *BillingHandler {
	return &BillingHandler{
		service:   service,
		validator: validator.New(),
	}
}

// GetBill handles GET /residents/{residentId}/bill
func (h *BillingHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	residentID, err := uuid.Parse(mux.Vars(r)["residentId"])
	if err != nil {
		response.BadRequest(w, "Invalid resident id", err)
		return
	}

	bill, err := h.service.GetBill(r.Context(), residentID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, bill)
}

// CreateOrder handles POST /residents/{residentId}/orders
func (h *BillingHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	residentID, err := uuid.Parse(mux.Vars(r)["residentId"])
	if err != nil {
		response.BadRequest(w, "Invalid resident id", err)
		return
	}

	var request domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), residentID, &request)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, order)
}

// VerifyPayment handles POST /payments/verify, the gateway's callback
func (h *BillingHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var request domain.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	result, err := h.service.VerifyPayment(r.Context(), &request)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, result)
}
