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

type ResidentHandler struct {
	service   *service.SocietyService
	validator *validator.Validate
}

func NewResidentHandler(service *service.SocietyService) *ResidentHandler {
	return &ResidentHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Register handles POST /residents
func (h *ResidentHandler) Register(w http.ResponseWriter, r *http.Request) {
	var request domain.RegisterResidentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	resident, err := h.service.RegisterResident(r.Context(), &request)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, resident)
}

// List handles GET /residents?society=NAME
func (h *ResidentHandler) List(w http.ResponseWriter, r *http.Request) {
	societyName := r.URL.Query().Get("society")
	if societyName == "" {
		response.BadRequest(w, "society query parameter is required", nil)
		return
	}

	residents, err := h.service.ListResidents(r.Context(), societyName)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, residents)
}

// Approve handles POST /residents/{residentId}/approve
func (h *ResidentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setValidation(w, r, domain.ValidationApproved)
}

// Decline handles POST /residents/{residentId}/decline
func (h *ResidentHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.setValidation(w, r, domain.ValidationDeclined)
}

func (h *ResidentHandler) setValidation(w http.ResponseWriter, r *http.Request, validation string) {
	residentID, err := uuid.Parse(mux.Vars(r)["residentId"])
	if err != nil {
		response.BadRequest(w, "Invalid resident id", err)
		return
	}

	resident, err := h.service.SetResidentValidation(r.Context(), residentID, validation)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, resident)
}
