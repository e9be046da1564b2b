package notifications

import (
	"fmt"
	"strings"

	config "github.com/lumierehotels/booking-api/configs"
)

// BookingEmailData is the flat payload handed to the dispatcher for every
// booking message kind.
type BookingEmailData struct {
	GuestName  string
	GuestEmail string
	HotelName  string
	RoomName   string
	CheckIn    string
	CheckOut   string
	TotalPrice int64
	Reference  string
	Extras     []string
}

func euros(cents int64) string {
	return fmt.Sprintf("€%.2f", float64(cents)/100)
}

func SendBookingConfirmation(data BookingEmailData) {
	var extrasRow string
	if len(data.Extras) > 0 {
		extrasRow = fmt.Sprintf(`<tr><td style="padding: 8px 0; color: #94A3B8;">Extras</td><td style="padding: 8px 0; text-align: right;">%s</td></tr>`, strings.Join(data.Extras, ", "))
	}

	html := fmt.Sprintf(`
		<div style="font-family: 'Georgia', serif; max-width: 600px; margin: 0 auto; background: #0A1628; color: #F5F0EB; padding: 40px;">
		  <div style="text-align: center; border-bottom: 1px solid #C9A96E; padding-bottom: 24px; margin-bottom: 24px;">
		    <h1 style="font-size: 28px; color: #C9A96E; margin: 0;">LUMIÈRE</h1>
		    <p style="color: #94A3B8; margin-top: 8px;">Hotels &amp; Resorts</p>
		  </div>
		  <h2 style="color: #F5F0EB; font-size: 22px;">¡Tu reserva está confirmada!</h2>
		  <p style="color: #94A3B8;">Hola %s, gracias por elegir Lumière Hotels.</p>
		  <div style="background: #1E293B; border-radius: 12px; padding: 24px; margin: 24px 0;">
		    <table style="width: 100%%; border-collapse: collapse;">
		      <tr><td style="padding: 8px 0; color: #94A3B8;">Código de reserva</td><td style="padding: 8px 0; text-align: right; font-weight: bold; color: #C9A96E;">%s</td></tr>
		      <tr><td style="padding: 8px 0; color: #94A3B8;">Hotel</td><td style="padding: 8px 0; text-align: right;">%s</td></tr>
		      <tr><td style="padding: 8px 0; color: #94A3B8;">Habitación</td><td style="padding: 8px 0; text-align: right;">%s</td></tr>
		      <tr><td style="padding: 8px 0; color: #94A3B8;">Check-in</td><td style="padding: 8px 0; text-align: right;">%s</td></tr>
		      <tr><td style="padding: 8px 0; color: #94A3B8;">Check-out</td><td style="padding: 8px 0; text-align: right;">%s</td></tr>
		      %s
		      <tr style="border-top: 1px solid #334155;"><td style="padding: 12px 0; font-weight: bold; font-size: 18px;">Total</td><td style="padding: 12px 0; text-align: right; font-weight: bold; font-size: 18px; color: #C9A96E;">%s</td></tr>
		    </table>
		  </div>
		  <p style="color: #94A3B8; font-size: 14px; text-align: center; margin-top: 32px;">
		    ¿Necesitas ayuda? Escríbenos a <a href="mailto:reservas@lumierehotels.com" style="color: #C9A96E;">reservas@lumierehotels.com</a>
		  </p>
		</div>`,
		data.GuestName, data.Reference, data.HotelName, data.RoomName,
		data.CheckIn, data.CheckOut, extrasRow, euros(data.TotalPrice))

	SendEmail(data.GuestName, data.GuestEmail, fmt.Sprintf("Confirmación de reserva — %s", data.HotelName), html)
}

func SendCancellationEmail(data BookingEmailData) {
	html := fmt.Sprintf(`
		<div style="font-family: 'Georgia', serif; max-width: 600px; margin: 0 auto; background: #0A1628; color: #F5F0EB; padding: 40px;">
		  <div style="text-align: center; border-bottom: 1px solid #C9A96E; padding-bottom: 24px; margin-bottom: 24px;">
		    <h1 style="font-size: 28px; color: #C9A96E; margin: 0;">LUMIÈRE</h1>
		  </div>
		  <h2>Reserva Cancelada</h2>
		  <p style="color: #94A3B8;">Hola %s, tu reserva en %s (%s — %s) ha sido cancelada correctamente.</p>
		  <p style="color: #94A3B8;">Si fue un error, puedes realizar una nueva reserva en nuestra web.</p>
		</div>`,
		data.GuestName, data.HotelName, data.CheckIn, data.CheckOut)

	SendEmail(data.GuestName, data.GuestEmail, fmt.Sprintf("Reserva cancelada — %s", data.HotelName), html)
}

// SendAdminNotification alerts the operations inbox about a new confirmed
// booking.
func SendAdminNotification(data BookingEmailData) {
	adminEmail := config.Config("ADMIN_EMAIL")
	if adminEmail == "" {
		return
	}

	html := fmt.Sprintf(`
		<div style="font-family: sans-serif; padding: 20px;">
		  <h2>Nueva Reserva Recibida</h2>
		  <p><strong>Huésped:</strong> %s (%s)</p>
		  <p><strong>Hotel:</strong> %s</p>
		  <p><strong>Habitación:</strong> %s</p>
		  <p><strong>Fechas:</strong> %s → %s</p>
		  <p><strong>Total:</strong> %s</p>
		  <p><strong>Referencia:</strong> %s</p>
		</div>`,
		data.GuestName, data.GuestEmail, data.HotelName, data.RoomName,
		data.CheckIn, data.CheckOut, euros(data.TotalPrice), data.Reference)

	SendEmail("Equipo Lumière", adminEmail, fmt.Sprintf("Nueva reserva — %s — %s", data.HotelName, data.GuestName), html)
}
