package handler

import (
	"fmt"
	"net/http"
	"time"

	"property-catalog/internal/mail"
	"property-catalog/internal/model"
	"property-catalog/pkg/config"
	"property-catalog/pkg/logger"
	"property-catalog/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LeadRequest is a "list your property" form submission from an owner.
type LeadRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PropertyType  string `json:"property_type"`
	Location      string `json:"location"`
	ExpectedPrice string `json:"price"`
	Details       string `json:"details"`
}

// LeadHandler relays owner leads to the brokerage mailbox. Leads never touch
// the catalog store: listing a property remains a human-mediated workflow.
type LeadHandler struct {
	sender mail.Sender
	cfg    *config.MailConfig
}

func NewLeadHandler(sender mail.Sender, cfg *config.MailConfig) *LeadHandler {
	return &LeadHandler{sender: sender, cfg: cfg}
}

// SubmitLead handles POST /api/leads.
func (h *LeadHandler) SubmitLead(c echo.Context) error {
	log := logger.FromContext(c)

	var req LeadRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid lead request body", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" {
		log.Warn("Lead request missing required fields")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Missing required fields",
		})
	}

	lead := model.Lead{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PropertyType:  req.PropertyType,
		Location:      req.Location,
		ExpectedPrice: req.ExpectedPrice,
		Details:       req.Details,
		Status:        model.LeadStatusNew,
		CreatedAt:     time.Now(),
	}

	msg := mail.Message{
		From:    h.cfg.From,
		To:      []string{h.cfg.To},
		ReplyTo: lead.Email,
		Subject: fmt.Sprintf("New Listing Lead from %s", lead.Name),
		HTML: fmt.Sprintf(
			"<div style=\"font-family:Arial,sans-serif;line-height:1.6\">"+
				"<h2>New Listing Lead</h2>"+
				"<p><strong>Name:</strong> %s</p>"+
				"<p><strong>Email:</strong> %s</p>"+
				"<p><strong>Phone:</strong> %s</p>"+
				"<p><strong>Property Type:</strong> %s</p>"+
				"<p><strong>Location:</strong> %s</p>"+
				"<p><strong>Expected Price:</strong> %s</p>"+
				"<p><strong>Details:</strong></p><p>%s</p></div>",
			lead.Name, lead.Email, lead.Phone, lead.PropertyType,
			lead.Location, lead.ExpectedPrice, lead.Details),
	}

	if err := h.sender.Send(c.Request().Context(), msg); err != nil {
		log.Error("Failed to relay lead",
			zap.String("lead_id", lead.ID),
			zap.String("name", lead.Name),
			zap.Error(err))
		prometheus.RecordMailRelay("lead", "failure")
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to send message",
		})
	}

	log.Info("Lead relayed",
		zap.String("lead_id", lead.ID),
		zap.String("name", lead.Name),
		zap.String("property_type", lead.PropertyType))
	prometheus.RecordMailRelay("lead", "success")
	prometheus.LeadsReceivedCounter.Inc()
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"lead_id": lead.ID,
	})
}
