package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/carebridge/medtour-backend/internal/query/services"
	apperrors "github.com/carebridge/medtour-backend/pkg/errors"
)

// DirectoryHandler handles the directory listing HTTP requests
type DirectoryHandler struct {
	service *services.DirectoryQueryService
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(service *services.DirectoryQueryService) *DirectoryHandler {
	return &DirectoryHandler{
		service: service,
	}
}

// ListHospitals handles GET /api/hospitals
func (h *DirectoryHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	params, err := parseDirectoryParams(r.URL.Query())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.service.Hospitals(r.Context(), params)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// ListBranches handles GET /api/branches
func (h *DirectoryHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	params, err := parseDirectoryParams(r.URL.Query())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.service.Branches(r.Context(), params)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// ListDoctors handles GET /api/doctors
func (h *DirectoryHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	params, err := parseDirectoryParams(r.URL.Query())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.service.Doctors(r.Context(), params)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// ListTreatments handles GET /api/treatments
func (h *DirectoryHandler) ListTreatments(w http.ResponseWriter, r *http.Request) {
	params, err := parseDirectoryParams(r.URL.Query())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.service.Treatments(r.Context(), params)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// parseDirectoryParams builds service params from the query string. Each
// facet accepts a direct id (cityId) or free text (city); the id wins when
// both are present.
func parseDirectoryParams(q url.Values) (services.DirectoryParams, error) {
	params := services.DirectoryParams{
		Query:         q.Get("q"),
		Branch:        services.FacetParam{ID: q.Get("branchId"), Text: q.Get("branch")},
		City:          services.FacetParam{ID: q.Get("cityId"), Text: q.Get("city")},
		Doctor:        services.FacetParam{ID: q.Get("doctorId"), Text: q.Get("doctor")},
		Specialty:     services.FacetParam{ID: q.Get("specialtyId"), Text: q.Get("specialty")},
		Department:    services.FacetParam{ID: q.Get("departmentId"), Text: q.Get("department")},
		Treatment:     services.FacetParam{ID: q.Get("treatmentId"), Text: q.Get("treatment")},
		Accreditation: services.FacetParam{ID: q.Get("accreditationId"), Text: q.Get("accreditation")},
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return services.DirectoryParams{}, apperrors.NewValidationError("page must be an integer")
		}
		params.Page = page
	}
	if raw := q.Get("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return services.DirectoryParams{}, apperrors.NewValidationError("pageSize must be an integer")
		}
		params.PageSize = size
	}
	return params, nil
}

// respondWithAppError maps application errors onto HTTP status codes
func respondWithAppError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeExternal:
			body := map[string]string{"error": appErr.Message}
			if appErr.Err != nil {
				body["detail"] = appErr.Err.Error()
			}
			respondWithJSON(w, http.StatusBadGateway, body)
		default:
			respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
