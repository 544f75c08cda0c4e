// services/digest_service.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"attendpro-backend/ledger"
	"attendpro-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DigestService sends each opted-in owner a morning summary of yesterday's
// ledger over SMS or WhatsApp.
type DigestService struct {
	db     *gorm.DB
	ledger *ledger.Ledger
	client *twilio.RestClient
	log    *zap.Logger
}

func NewDigestService(db *gorm.DB, led *ledger.Ledger, log *zap.Logger) *DigestService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &DigestService{
		db:     db,
		ledger: led,
		log:    log,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *DigestService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyDigests)

	c.Start()
	s.log.Info("digest scheduler started")
}

func (s *DigestService) SendDailyDigests() {
	s.log.Info("starting daily digest processing")

	var owners []models.User
	if err := s.db.Find(&owners, "is_active = ? AND digest_opt_in = ?", true, true).Error; err != nil {
		s.log.Error("failed to fetch owners", zap.Error(err))
		return
	}

	yesterday := time.Now().AddDate(0, 0, -1)
	for _, owner := range owners {
		s.ProcessOwnerDigest(owner, yesterday)
	}

	s.log.Info("daily digest processing completed")
}

func (s *DigestService) ProcessOwnerDigest(owner models.User, day time.Time) {
	scope := ledger.Scope{TenantID: owner.ID, UserID: owner.ID}

	records, err := s.ledger.FilterAttendance(scope, day, day, "")
	if err != nil {
		s.log.Error("failed to read ledger for digest",
			zap.String("tenant", owner.ID.String()), zap.Error(err))
		return
	}
	view := ledger.Aggregate(records)

	business := owner.BusinessName
	if business == "" {
		business = owner.Name
	}
	message := fmt.Sprintf("%s on %s: %d visits from %d customers, Rs. %.2f earned.",
		business, day.Format("02 Jan"),
		view.TotalAttendance, view.TotalCustomers, view.TotalEarnings)

	phone := owner.DigestPhone
	if phone == "" {
		phone = owner.Phone
	}
	if phone == "" {
		s.log.Warn("owner opted into digest but has no phone",
			zap.String("tenant", owner.ID.String()))
		return
	}

	// WhatsApp for E.164 numbers, plain SMS otherwise
	channel := "sms"
	to := phone
	if strings.HasPrefix(phone, "+") {
		to = "whatsapp:" + phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		s.log.Error("failed to send digest", zap.String("to", phone), zap.Error(err))
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		s.log.Info("digest sent", zap.String("to", phone), zap.String("sid", *resp.Sid))
	} else {
		s.log.Info("digest sent, no SID returned", zap.String("to", phone))
	}

	digestLog := models.DigestLog{
		TenantID:     owner.ID,
		Message:      message,
		Channel:      channel,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&digestLog).Error; err != nil {
		s.log.Error("failed to log digest", zap.String("tenant", owner.ID.String()), zap.Error(err))
	}
}
