package handler

import (
	"encoding/json"
	"net/http"

	"fisio-connect-api/internal/delivery/dto"
	"fisio-connect-api/internal/usecase"
	"fisio-connect-api/pkg/response"
	"fisio-connect-api/pkg/validator"
)

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
	validator           *validator.CustomValidator
}

func NewProfessionalHandler(professionalUsecase usecase.ProfessionalUsecase, validator *validator.CustomValidator) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
		validator:           validator,
	}
}

// GetAllProfessionals lists active professionals, optionally filtered by
// the especialidade query parameter (case-insensitive substring).
func (h *ProfessionalHandler) GetAllProfessionals(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("especialidade")

	professionals, err := h.professionalUsecase.GetAllProfessionals(r.Context(), specialty)
	if err != nil {
		response.InternalServerError(w, "Failed to get professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	professional, err := h.professionalUsecase.GetProfessional(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to get professional")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", professional)
}

func (h *ProfessionalHandler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.UpdateProfessional(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrRegistrationAlreadyExists:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update professional")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional updated successfully", professional)
}

func (h *ProfessionalHandler) DeactivateProfessional(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	professional, err := h.professionalUsecase.DeactivateProfessional(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to deactivate professional")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional deactivated successfully", professional)
}

func (h *ProfessionalHandler) ReactivateProfessional(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	professional, err := h.professionalUsecase.ReactivateProfessional(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to reactivate professional")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional reactivated successfully", professional)
}

func (h *ProfessionalHandler) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	if err := h.professionalUsecase.DeleteProfessional(r.Context(), userID); err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to delete professional")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional deleted successfully", nil)
}
