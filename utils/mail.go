package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"path/filepath"

	"github.com/kamaucodes/sokomart-api/models"
)

type ReceiptData struct {
	Name      string
	Total     string
	ItemCount int
	Date      string
}

// SendPurchaseReceipt emails a checkout summary to the buyer. When no
// SMTP address is configured the receipt is skipped silently.
func SendPurchaseReceipt(user models.User, purchase models.Purchase) error {
	if os.Getenv("SMTP_ADDRESS") == "" || user.Email == "" {
		return nil
	}

	data := ReceiptData{
		Name:      user.Username,
		Total:     fmt.Sprintf("%.2f", purchase.Total),
		ItemCount: purchase.ItemCount(),
		Date:      purchase.Date.Format("Jan 2, 2006"),
	}

	templatePath := filepath.Join("templates", "purchase_receipt.html")
	return sendEmail(user.Email, "Your Sokomart Purchase Receipt", data, templatePath)
}

func sendEmail(emailTo string, emailSubject string, data ReceiptData, templatePath string) error {

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	err = tmpl.Execute(&body, data)
	if err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		os.Getenv("FROM_EMAIL"),
		emailSubject,
		body.String(),
	)

	auth := smtp.PlainAuth(
		"",
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	err = smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, os.Getenv("FROM_EMAIL"), []string{emailTo}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
