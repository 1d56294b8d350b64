package mailer

import (
	"html/template"
)

// TicketData feeds the confirmation email template.
type TicketData struct {
	ClientName  string
	BarberName  string
	ServiceName string
	Date        string
	StartTime   string
	Price       string
	ShopName    string
	ShopAddress string
	ShopPhone   string
	ShopMapsURL string
	ShopLogo    string
}

// confirmationTemplate renders the appointment ticket sent when a barber
// confirms an appointment.
var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html lang="es">
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 24px;">
  <div style="max-width: 520px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
    {{if .ShopLogo}}<img src="{{.ShopLogo}}" alt="{{.ShopName}}" style="max-height: 64px; margin-bottom: 16px;">{{end}}
    <h1 style="color: #1a1a1a; font-size: 22px;">{{.ShopName}}</h1>
    <h2 style="color: #c49a3a; font-size: 18px;">¡Tu cita ha sido confirmada!</h2>
    <p>Hola {{.ClientName}},</p>
    <p>Tu cita ha sido confirmada por tu barbero. Aquí tienes los detalles:</p>
    <table style="width: 100%; border-collapse: collapse; margin: 16px 0;">
      <tr><td style="padding: 8px 0; color: #666;">Barbero</td><td style="padding: 8px 0; text-align: right;"><strong>{{.BarberName}}</strong></td></tr>
      <tr><td style="padding: 8px 0; color: #666;">Servicio</td><td style="padding: 8px 0; text-align: right;"><strong>{{.ServiceName}}</strong></td></tr>
      <tr><td style="padding: 8px 0; color: #666;">Fecha</td><td style="padding: 8px 0; text-align: right;"><strong>{{.Date}}</strong></td></tr>
      <tr><td style="padding: 8px 0; color: #666;">Hora</td><td style="padding: 8px 0; text-align: right;"><strong>{{.StartTime}}</strong></td></tr>
      <tr><td style="padding: 8px 0; color: #666;">Precio</td><td style="padding: 8px 0; text-align: right;"><strong>{{.Price}}</strong></td></tr>
    </table>
    {{if .ShopAddress}}<p style="color: #666;">Te esperamos en {{.ShopAddress}}.</p>{{end}}
    {{if .ShopMapsURL}}<p><a href="{{.ShopMapsURL}}" style="color: #c49a3a;">Cómo llegar</a></p>{{end}}
    {{if .ShopPhone}}<p style="color: #666;">Si necesitas cambiar tu cita, llámanos al {{.ShopPhone}}.</p>{{end}}
    <p style="margin-top: 24px;">¡Hasta pronto!</p>
  </div>
</body>
</html>`))
