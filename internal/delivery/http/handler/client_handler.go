package handler

import (
	"encoding/json"
	"net/http"

	"fisio-connect-api/internal/delivery/dto"
	"fisio-connect-api/internal/usecase"
	"fisio-connect-api/pkg/response"
	"fisio-connect-api/pkg/validator"
)

type ClientHandler struct {
	clientUsecase usecase.ClientUsecase
	validator     *validator.CustomValidator
}

func NewClientHandler(clientUsecase usecase.ClientUsecase, validator *validator.CustomValidator) *ClientHandler {
	return &ClientHandler{
		clientUsecase: clientUsecase,
		validator:     validator,
	}
}

func (h *ClientHandler) GetAllClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientUsecase.GetAllClients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get clients")
		return
	}

	response.Success(w, http.StatusOK, "Clients retrieved successfully", clients)
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	client, err := h.clientUsecase.GetClient(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to get client")
		}
		return
	}

	response.Success(w, http.StatusOK, "Client retrieved successfully", client)
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	client, err := h.clientUsecase.UpdateClient(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to update client")
		}
		return
	}

	response.Success(w, http.StatusOK, "Client updated successfully", client)
}

func (h *ClientHandler) DeactivateClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	client, err := h.clientUsecase.DeactivateClient(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to deactivate client")
		}
		return
	}

	response.Success(w, http.StatusOK, "Client deactivated successfully", client)
}

func (h *ClientHandler) ReactivateClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	client, err := h.clientUsecase.ReactivateClient(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to reactivate client")
		}
		return
	}

	response.Success(w, http.StatusOK, "Client reactivated successfully", client)
}

func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	if err := h.clientUsecase.DeleteClient(r.Context(), userID); err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to delete client")
		}
		return
	}

	response.Success(w, http.StatusOK, "Client deleted successfully", nil)
}
