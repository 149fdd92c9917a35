package handler

import (
	"fmt"
	"net/http"
	"strings"

	"property-catalog/internal/mail"
	"property-catalog/pkg/config"
	"property-catalog/pkg/logger"
	"property-catalog/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ContactRequest is a contact form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactHandler relays contact form submissions to the brokerage mailbox.
type ContactHandler struct {
	sender mail.Sender
	cfg    *config.MailConfig
}

func NewContactHandler(sender mail.Sender, cfg *config.MailConfig) *ContactHandler {
	return &ContactHandler{sender: sender, cfg: cfg}
}

// Contact handles POST /api/contact. The send is at-most-once: a relay
// failure is reported as a generic error so the page can keep the entered
// data and let the visitor retry.
func (h *ContactHandler) Contact(c echo.Context) error {
	log := logger.FromContext(c)

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid contact request body", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		log.Warn("Contact request missing required fields")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Missing required fields",
		})
	}

	msg := mail.Message{
		From:    h.cfg.From,
		To:      []string{h.cfg.To},
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New Property Enquiry from %s", req.Name),
		HTML: fmt.Sprintf(
			"<div style=\"font-family:Arial,sans-serif;line-height:1.6\">"+
				"<h2>New Property Enquiry</h2>"+
				"<p><strong>Name:</strong> %s</p>"+
				"<p><strong>Email:</strong> %s</p>"+
				"<p><strong>Message:</strong></p><p>%s</p></div>",
			req.Name, req.Email, strings.ReplaceAll(req.Message, "\n", "<br />")),
	}

	if err := h.sender.Send(c.Request().Context(), msg); err != nil {
		log.Error("Failed to relay contact message",
			zap.String("name", req.Name),
			zap.Error(err))
		prometheus.RecordMailRelay("contact", "failure")
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to send message",
		})
	}

	log.Info("Contact message relayed", zap.String("name", req.Name))
	prometheus.RecordMailRelay("contact", "success")
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
	})
}
