package mail

import (
	"bytes"
	"embed"
	"html/template"
	"os"
	"strconv"

	gomail "gopkg.in/gomail.v2"

	"github.com/kusheen8/BoooKit/logger"
	"github.com/kusheen8/BoooKit/models/booking_models"
)

const bookingConfirmationTemplate = "templates/email/booking_confirmation.html"

var templates *template.Template

// InitTemplates parses the embedded email templates. Must be called once
// at startup before any mail is sent.
func InitTemplates(fs embed.FS) {
	templates = template.Must(template.ParseFS(fs, "templates/email/*.html"))
}

// SendBookingConfirmation emails the booking summary to the customer.
// Sending is best-effort: when SMTP is not configured it is skipped, and a
// failure never affects the already-persisted booking.
func SendBookingConfirmation(booking *booking_models.Booking) {
	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		logger.InfoLogger.Infof("SMTP not configured, skipping confirmation email for booking %s", booking.ID)
		return
	}
	if templates == nil {
		logger.ErrorLogger.Error("Email templates not initialized, skipping confirmation email")
		return
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		logger.ErrorLogger.Errorf("Invalid SMTP port: %v", err)
		return
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, "booking_confirmation.html", booking); err != nil {
		logger.ErrorLogger.Errorf("Failed to render confirmation email for booking %s: %v", booking.ID, err)
		return
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", os.Getenv("FROM_EMAIL"))
	mailer.SetHeader("To", booking.Email)
	mailer.SetHeader("Subject", "Booking confirmed: "+booking.BookingReference)
	mailer.SetBody("text/html", body.String())

	dialer := gomail.NewDialer(smtpHost, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	if err := dialer.DialAndSend(mailer); err != nil {
		logger.ErrorLogger.Errorf("Failed to send confirmation email to %s: %v", booking.Email, err)
		return
	}

	logger.InfoLogger.Infof("Confirmation email sent to %s for booking %s", booking.Email, booking.ID)
}
