package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/societyops/maintenance-engine/internal/domain"
	"github.com/societyops/maintenance-engine/internal/service"
	"github.com/societyops/maintenance-engine/pkg/response"
)

type SocietyHandler struct {
	service   *service.SocietyService
	validator *validator.Validate
}

func NewSocietyHandler(service *service.SocietyService) *SocietyHandler {
	return &SocietyHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Create handles POST /societies
func (h *SocietyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateSocietyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	society, err := h.service.CreateSociety(r.Context(), &request)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, society)
}

// Get handles GET /societies/{name}
func (h *SocietyHandler) Get(w http.ResponseWriter, r *http.Request) {
	society, err := h.service.GetSociety(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, society)
}

// UpdateMaintenanceBill handles PUT /societies/{name}/maintenance-bill
func (h *SocietyHandler) UpdateMaintenanceBill(w http.ResponseWriter, r *http.Request) {
	var request domain.UpdateMaintenanceBillRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	society, err := h.service.UpdateMaintenanceBill(r.Context(), mux.Vars(r)["name"], request.MaintenanceBill)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, society)
}

// PostNotice handles POST /societies/{name}/notices
func (h *SocietyHandler) PostNotice(w http.ResponseWriter, r *http.Request) {
	var request domain.PostNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	notice, err := h.service.PostNotice(r.Context(), mux.Vars(r)["name"], &request)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, notice)
}

// ListNotices handles GET /societies/{name}/notices
func (h *SocietyHandler) ListNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := h.service.ListNotices(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, notices)
}

// FileComplaint handles POST /societies/{name}/complaints
func (h *SocietyHandler) FileComplaint(w http.ResponseWriter, r *http.Request) {
	var request domain.FileComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	complaint, err := h.service.FileComplaint(r.Context(), mux.Vars(r)["name"], &request)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, complaint)
}

// ListComplaints handles GET /societies/{name}/complaints
func (h *SocietyHandler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.service.ListComplaints(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, complaints)
}

// AddContact handles POST /societies/{name}/contacts
func (h *SocietyHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	var request domain.AddContactRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	contact, err := h.service.AddContact(r.Context(), mux.Vars(r)["name"], &request)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, contact)
}

// ListContacts handles GET /societies/{name}/contacts
func (h *SocietyHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.ListContacts(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, contacts)
}
