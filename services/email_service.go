package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"gopkg.in/gomail.v2"

	"motosgarage-api/config"
)

const verificationCodeTTL = 10 * time.Minute

// EmailService sends account verification mail. Verification codes are kept
// in memory with an expiry; a background goroutine sweeps stale ones.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer

	mu    sync.RWMutex
	codes map[string]verificationCode
}

type verificationCode struct {
	Code      string
	ExpiresAt time.Time
	Used      bool
}

// NewEmailService creates the service and starts the expiry sweeper.
func NewEmailService(cfg *config.Config) *EmailService {
	service := &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		codes:  make(map[string]verificationCode),
	}

	go service.sweepExpiredCodes()

	return service
}

func (es *EmailService) generateCode() string {
	const digits = "0123456789"
	code := make([]byte, 6)
	for i := range code {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		code[i] = digits[num.Int64()]
	}
	return string(code)
}

// SendVerificationEmail mails a verification code to the address. A still
// valid unused code is reused instead of generating a new one.
func (es *EmailService) SendVerificationEmail(email, name string) (string, error) {
	es.mu.Lock()
	existing, ok := es.codes[email]
	var code string
	if ok && !existing.Used && time.Now().Before(existing.ExpiresAt) {
		code = existing.Code
	} else {
		code = es.generateCode()
		es.codes[email] = verificationCode{
			Code:      code,
			ExpiresAt: time.Now().Add(verificationCodeTTL),
		}
	}
	es.mu.Unlock()

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "MotosGarage - Verificación de email")
	m.SetBody("text/html", fmt.Sprintf(
		"<h2>Hola %s</h2><p>Tu código de verificación de MotosGarage es:</p><h1>%s</h1><p>El código expira en 10 minutos.</p>",
		name, code))

	if err := es.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send verification email: %w", err)
	}

	return code, nil
}

// VerifyCode checks a code for the address and marks it used on success.
func (es *EmailService) VerifyCode(email, code string) bool {
	es.mu.Lock()
	defer es.mu.Unlock()

	stored, ok := es.codes[email]
	if !ok || stored.Used || time.Now().After(stored.ExpiresAt) || stored.Code != code {
		return false
	}

	stored.Used = true
	es.codes[email] = stored
	return true
}

func (es *EmailService) sweepExpiredCodes() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		es.mu.Lock()
		for email, code := range es.codes {
			if time.Now().After(code.ExpiresAt) || code.Used {
				delete(es.codes, email)
			}
		}
		es.mu.Unlock()
	}
}
