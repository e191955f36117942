package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/delivery/http/middleware"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// CreateAppointment handles the public booking form. It accepts a JSON
// body or classic form fields.
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
	} else {
		req.PatientName = r.FormValue("patient_name")
		req.BirthDate = r.FormValue("birth_date")
		req.Phone = r.FormValue("phone")
		req.Email = r.FormValue("email")
		req.Message = r.FormValue("message")
		req.PrivacyAccepted = r.FormValue("privacy_accepted") == "1" || r.FormValue("privacy_accepted") == "true"
		if raw := r.FormValue("specialty_id"); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
				req.SpecialtyID = uint(id)
			}
		}
		if raw := r.FormValue("doctor_id"); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
				doctorID := uint(id)
				req.DoctorID = &doctorID
			}
		}
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPrivacyNotAccepted:
			response.ValidationError(w, []string{"Privacy terms must be accepted"})
		case usecase.ErrInvalidBirthDate:
			response.ValidationError(w, []string{"Birth date must use the YYYY-MM-DD format"})
		case usecase.ErrSpecialtyNotFound:
			response.BadRequest(w, "Specialty does not exist")
		case usecase.ErrAppointmentDoctorGone:
			response.BadRequest(w, "Selected doctor does not exist")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.appointmentUsecase.ConfirmAppointment, "Appointment confirmed successfully")
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.appointmentUsecase.CancelAppointment, "Appointment cancelled successfully")
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.appointmentUsecase.DeleteAppointment, "Appointment deleted successfully")
}

func (h *AppointmentHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, appointmentID uint, actor string) error,
	message string,
) {
	appointmentID, err := parseIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	actor, _ := middleware.GetAdminUserFromContext(r.Context())
	if err := apply(r.Context(), appointmentID, actor); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}
