package mailer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primebarbervip/PrimeBarberClub/internal/config"
)

func ticketData() TicketData {
	return TicketData{
		ClientName:  "Pablo",
		BarberName:  "Marco",
		ServiceName: "Corte clásico",
		Date:        "2026-03-20",
		StartTime:   "11:00",
		Price:       "15.00 €",
		ShopName:    "PrimeBarberClub",
		ShopAddress: "Calle Mayor 5, Madrid",
		ShopPhone:   "+34 600 000 000",
		ShopMapsURL: "https://maps.example.com/primebarberclub",
		ShopLogo:    "https://cdn.example.com/logo.png",
	}
}

func TestConfirmationTemplate_RendersTicket(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, confirmationTemplate.Execute(&buf, ticketData()))

	html := buf.String()
	assert.Contains(t, html, "Hola Pablo,")
	assert.Contains(t, html, "Marco")
	assert.Contains(t, html, "Corte clásico")
	assert.Contains(t, html, "2026-03-20")
	assert.Contains(t, html, "11:00")
	assert.Contains(t, html, "Te esperamos en Calle Mayor 5, Madrid.")
	assert.Contains(t, html, "llámanos al +34 600 000 000")
	assert.Contains(t, html, `href="https://maps.example.com/primebarberclub"`)
	assert.Contains(t, html, `src="https://cdn.example.com/logo.png"`)
}

func TestConfirmationTemplate_OptionalShopFields(t *testing.T) {
	data := ticketData()
	data.ShopAddress = ""
	data.ShopPhone = ""
	data.ShopMapsURL = ""
	data.ShopLogo = ""

	var buf bytes.Buffer
	require.NoError(t, confirmationTemplate.Execute(&buf, data))

	html := buf.String()
	assert.NotContains(t, html, "Te esperamos en")
	assert.NotContains(t, html, "llámanos")
	assert.NotContains(t, html, "Cómo llegar")
	assert.NotContains(t, html, "<img")
}

func TestClient_DisabledIsNoOp(t *testing.T) {
	client, err := NewClient(config.MailConfig{Enabled: false}, nopLogger{})
	require.NoError(t, err)

	err = client.SendConfirmation(context.Background(), "pablo@example.com", ticketData())
	assert.ErrorIs(t, err, ErrDisabled)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
