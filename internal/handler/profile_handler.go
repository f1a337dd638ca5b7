package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/healthtrack-smoke/internal/dto"
	"github.com/prperemyshlev/healthtrack-smoke/internal/service"
)

// ProfileHandler serves the personalized health profile endpoints
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile returns the caller's health profile.
// A missing profile is not an error: data carries a hint instead.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context(), c.GetString(userIDKey))
	if errors.Is(err, service.ErrProfileNotFound) {
		c.JSON(http.StatusOK, dto.Envelope{
			Success: true,
			Data:    dto.MessageData{Message: "Health profile not created yet, please complete your information first"},
		})
		return
	}
	if err != nil {
		failure(c, "Failed to get health profile", err)
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{Success: true, Data: profile})
}

func (h *ProfileHandler) GetStandards(c *gin.Context) {
	standards, err := h.profileService.GetStandards(c.Request.Context(), c.GetString(userIDKey))
	if errors.Is(err, service.ErrProfileNotFound) {
		c.JSON(http.StatusOK, dto.Envelope{
			Success: true,
			Data:    dto.MessageData{Message: "Personalized standards not generated yet, please complete your health profile first"},
		})
		return
	}
	if err != nil {
		failure(c, "Failed to get personalized standards", err)
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{Success: true, Data: standards})
}

func (h *ProfileHandler) UpdateDoctorNotes(c *gin.Context) {
	var req dto.DoctorNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Code:    "VALIDATION_ERROR",
			Message: "Validation failed",
			Error:   err.Error(),
		})
		return
	}

	profile, err := h.profileService.UpdateDoctorNotes(c.Request.Context(), c.GetString(userIDKey), *req.DoctorNotes)
	if err != nil {
		failure(c, "Failed to update doctor notes", err)
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		Success: true,
		Message: "Doctor notes updated",
		Data:    profile,
	})
}

func (h *ProfileHandler) GetPersonalizedAnalysis(c *gin.Context) {
	analysis, err := h.profileService.GetPersonalizedAnalysis(c.Request.Context(), c.GetString(userIDKey))
	if err != nil {
		failure(c, "Failed to get personalized health analysis", err)
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{Success: true, Data: analysis})
}

func failure(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrProfileNotFound) || errors.Is(err, service.ErrNoHealthRecords) {
		status = http.StatusNotFound
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}
