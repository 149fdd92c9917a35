package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"property-catalog/internal/mail"
	"property-catalog/pkg/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSender records the last message handed to the relay.
type stubSender struct {
	sent []mail.Message
	err  error
}

func (s *stubSender) Send(_ context.Context, msg mail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func mailConfig() *config.MailConfig {
	return &config.MailConfig{
		From: "no-reply@clifftonproperties.com",
		To:   "query@clifftonproperties.com",
	}
}

func postJSON(t *testing.T, h echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func TestContact_Success(t *testing.T) {
	sender := &stubSender{}
	h := NewContactHandler(sender, mailConfig())

	rec := postJSON(t, h.Contact, "/api/contact",
		`{"name":"Asha Patel","email":"asha@example.com","message":"Interested in CP-1001.\nPlease call back."}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "no-reply@clifftonproperties.com", msg.From)
	assert.Equal(t, []string{"query@clifftonproperties.com"}, msg.To)
	assert.Equal(t, "asha@example.com", msg.ReplyTo)
	assert.Contains(t, msg.Subject, "Asha Patel")
	assert.Contains(t, msg.HTML, "<br />")
}

func TestContact_MissingFields(t *testing.T) {
	sender := &stubSender{}
	h := NewContactHandler(sender, mailConfig())

	rec := postJSON(t, h.Contact, "/api/contact", `{"name":"Asha Patel","email":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, sender.sent)
}

func TestContact_RelayFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("relay unreachable")}
	h := NewContactHandler(sender, mailConfig())

	rec := postJSON(t, h.Contact, "/api/contact",
		`{"name":"Asha Patel","email":"asha@example.com","message":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to send message", resp["error"])
}

func TestSubmitLead_Success(t *testing.T) {
	sender := &stubSender{}
	h := NewLeadHandler(sender, mailConfig())

	rec := postJSON(t, h.SubmitLead, "/api/leads",
		`{"name":"Ravi Shah","email":"ravi@example.com","phone":"+919876543210","property_type":"residential","location":"Vesu, Surat","price":"75L","details":"3 BHK, ready to move"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["lead_id"])

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Contains(t, msg.Subject, "Ravi Shah")
	assert.Contains(t, msg.HTML, "Vesu, Surat")
}

func TestSubmitLead_MissingFields(t *testing.T) {
	sender := &stubSender{}
	h := NewLeadHandler(sender, mailConfig())

	rec := postJSON(t, h.SubmitLead, "/api/leads", `{"name":"Ravi Shah","email":"ravi@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, sender.sent)
}

func TestSubmitLead_RelayFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("relay unreachable")}
	h := NewLeadHandler(sender, mailConfig())

	rec := postJSON(t, h.SubmitLead, "/api/leads",
		`{"name":"Ravi Shah","email":"ravi@example.com","phone":"+919876543210"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
