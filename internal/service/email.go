package service

import (
	"context"
	"fmt"

	"equipbid-backend/internal/domain"
	"equipbid-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	logger.ExternalServiceResult("sendgrid", "send", err, "to", to)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendRequestCreatedNotification(ctx context.Context, ownerEmail, ownerName, equipmentType, equipmentSubtype, location, deadline string) error {
	subject := fmt.Sprintf("New rental request: %s / %s", equipmentType, equipmentSubtype)
	body := fmt.Sprintf("Hello %s,\n\nA new rental request for %s / %s in %s is open for bidding until %s.\n\nSubmit your bid before the deadline to take part in the auction.",
		ownerName, equipmentType, equipmentSubtype, location, deadline)
	return s.send(ownerEmail, ownerName, subject, body)
}

func (s *emailService) SendAuctionWonNotification(ctx context.Context, managerEmail string, requestID int32, winner *domain.WinnerSummary) error {
	subject := fmt.Sprintf("Auction closed for request #%d", requestID)
	body := fmt.Sprintf("The auction for your request #%d has closed.\n\nWinner: %s (%s)\nEquipment: %s\nTotal price: %d\n\nContact: %s",
		requestID, winner.OwnerName, winner.CompanyName, winner.EquipmentName, winner.TotalPriceCents, winner.OwnerPhone)
	return s.send(managerEmail, "", subject, body)
}

func (s *emailService) SendAuctionNoWinnerNotification(ctx context.Context, managerEmail string, requestID int32) error {
	subject := fmt.Sprintf("Auction closed for request #%d", requestID)
	body := fmt.Sprintf("The auction for your request #%d has closed without any bids.\n\nYou can post a new request at any time.", requestID)
	return s.send(managerEmail, "", subject, body)
}

func (s *emailService) SendBidRejectedNotification(ctx context.Context, ownerEmail string, requestID int32) error {
	subject := fmt.Sprintf("Bid not selected for request #%d", requestID)
	body := fmt.Sprintf("The auction for request #%d has closed and another bid was selected.\n\nThank you for taking part.", requestID)
	return s.send(ownerEmail, "", subject, body)
}
