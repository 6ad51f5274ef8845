// services/notification_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"hotelpro-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotificationService sends best-effort guest messages. It is disabled
// unless the Twilio environment is configured; the engine never fails an
// operation because a message could not be sent, and messages go out only
// after the transaction commits.
type NotificationService struct {
	client  *twilio.RestClient
	from    string
	enabled bool
}

func NewNotificationService() *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_PHONE_NUMBER")

	return &NotificationService{
		from:    from,
		enabled: accountSid != "" && authToken != "" && from != "",
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

var (
	notifierOnce sync.Once
	notifier     *NotificationService
)

func defaultNotifier() *NotificationService {
	notifierOnce.Do(func() {
		notifier = NewNotificationService()
	})
	return notifier
}

func (n *NotificationService) SendBookingConfirmation(customer *models.Customer, r *models.Reservation) {
	body := fmt.Sprintf("Dear %s, your reservation from %s to %s is confirmed. Amount paid: %s.",
		customer.Name,
		r.CheckInDate.Format("2006-01-02"), r.CheckOutDate.Format("2006-01-02"),
		r.PaidAmount.StringFixed(2))
	n.send(customer.Phone, body)
}

func (n *NotificationService) SendRefundNotice(customer *models.Customer, r *models.Reservation) {
	body := fmt.Sprintf("Dear %s, your reservation from %s to %s has been cancelled. Refund issued: %s.",
		customer.Name,
		r.CheckInDate.Format("2006-01-02"), r.CheckOutDate.Format("2006-01-02"),
		r.RefundAmount.StringFixed(2))
	n.send(customer.Phone, body)
}

func (n *NotificationService) send(phone, body string) {
	if !n.enabled || phone == "" {
		return
	}

	// Prefer WhatsApp for E.164 numbers, SMS otherwise.
	to := phone
	from := n.from
	if strings.HasPrefix(phone, "+") && os.Getenv("TWILIO_WHATSAPP_NUMBER") != "" {
		to = "whatsapp:" + phone
		from = "whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send message to %s: %v", phone, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", phone, *resp.Sid)
	}
}
