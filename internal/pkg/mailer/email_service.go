package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendVerificationToken(toEmail, token string) error
	SendEmailChangeConfirmation(toEmail, token string) error
	SendPasswordChangeConfirmation(toEmail, token string) error
	SendPasswordResetLink(toEmail, token string) error
	SendSubscriptionReceipt(toEmail, planName string, amount float64, currency string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] %q sent to %s\n", subject, toEmail)
	return nil
}

func (s *emailService) SendVerificationToken(toEmail, token string) error {
	verifyLink := fmt.Sprintf("%s/verify-email?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to EstateFlow!</h2>
			<p>Click the button below to verify your email address:</p>
			<a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Verify Email</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 24 hours.</p>
			<p>If you didn't sign up, please ignore this email.</p>
		</div>
	`, verifyLink, verifyLink)

	return s.send(toEmail, "Verify Your Email", body)
}

func (s *emailService) SendEmailChangeConfirmation(toEmail, token string) error {
	confirmLink := fmt.Sprintf("%s/confirm-change?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Email Change Request</h2>
			<p>You requested to change the email on your EstateFlow account. Click below to confirm:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Confirm Email Change</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 24 hours.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, confirmLink, confirmLink)

	return s.send(toEmail, "Confirm Your Email Change", body)
}

func (s *emailService) SendPasswordChangeConfirmation(toEmail, token string) error {
	confirmLink := fmt.Sprintf("%s/confirm-change?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password Change Request</h2>
			<p>You requested to change your EstateFlow password. Click below to confirm:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Confirm Password Change</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 24 hours.</p>
			<p>If you didn't request this, please secure your account immediately.</p>
		</div>
	`, confirmLink, confirmLink)

	return s.send(toEmail, "Confirm Your Password Change", body)
}

func (s *emailService) SendPasswordResetLink(toEmail, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password Reset</h2>
			<p>We received a request to reset the password for your EstateFlow account. Click below to choose a new one:</p>
			<a href="%s" style="background-color: #DC3545; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset Password</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 24 hours.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, resetLink, resetLink)

	return s.send(toEmail, "Reset Your Password", body)
}

func (s *emailService) SendSubscriptionReceipt(toEmail, planName string, amount float64, currency string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payment Received</h2>
			<p>Thank you for subscribing to EstateFlow!</p>
			<p><strong>Plan:</strong> %s</p>
			<p><strong>Amount:</strong> %.2f %s</p>
			<p>Your agency features are now active.</p>
		</div>
	`, planName, amount, currency)

	return s.send(toEmail, "Your EstateFlow Receipt", body)
}
