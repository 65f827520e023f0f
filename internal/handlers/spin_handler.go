package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promowheel/spinwheel-backend/internal/models"
	"github.com/promowheel/spinwheel-backend/internal/services"
	"github.com/promowheel/spinwheel-backend/internal/utils"
)

// SpinHandler handles the public spin surface
type SpinHandler struct {
	spinService     services.SpinService
	campaignService services.CampaignService
}

// NewSpinHandler creates a new SpinHandler
func NewSpinHandler(spinService services.SpinService, campaignService services.CampaignService) *SpinHandler {
	return &SpinHandler{
		spinService:     spinService,
		campaignService: campaignService,
	}
}

// SpinRequest is the body of POST /api/public/spin
type SpinRequest struct {
	Slug  string `json:"slug" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// GetPublicCampaign handles GET /api/public/campaign/:slug
func (h *SpinHandler) GetPublicCampaign(c *gin.Context) {
	campaign, err := h.campaignService.GetPublicCampaign(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		case errors.Is(err, services.ErrCampaignUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Campaign is not active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load campaign"})
		}
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// Spin handles POST /api/public/spin
func (h *SpinHandler) Spin(c *gin.Context) {
	var req SpinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug and phone are required"})
		return
	}

	phone, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
		return
	}

	provenance := models.Provenance{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	result, err := h.spinService.Spin(c.Request.Context(), req.Slug, phone, provenance)
	if err != nil {
		h.renderSpinError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// renderSpinError maps the adjudication taxonomy onto HTTP statuses.
// A capacity race is 409: the client is told to spin again, which
// re-runs eligibility and selection server-side.
func (h *SpinHandler) renderSpinError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCampaignNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
	case errors.Is(err, services.ErrCampaignUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Campaign is expired or inactive"})
	case errors.Is(err, services.ErrQuotaExceeded):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Maximum spins reached for this number"})
	case errors.Is(err, services.ErrNoPrizeAvailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No prizes available at the moment"})
	case errors.Is(err, services.ErrNoNewPrizesAvailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No new prizes available. You have already won all available offers!"})
	case errors.Is(err, services.ErrCapacityRace):
		c.JSON(http.StatusConflict, gin.H{"error": "Please spin again, prize availability changed."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during spin"})
	}
}
