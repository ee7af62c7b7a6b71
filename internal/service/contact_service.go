package service

import (
	"context"
	"errors"

	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/internal/pkg/mailer"
)

var ErrContactDelivery = errors.New("failed to send message")

type IContactService interface {
	Send(ctx context.Context, req *dto.ContactRequest) error
}

type contactService struct {
	mailer       mailer.IEmailService
	companyEmail string
	logger       logger.ILogger
}

func NewContactService(mail mailer.IEmailService, companyEmail string, log logger.ILogger) IContactService {
	return &contactService{mailer: mail, companyEmail: companyEmail, logger: log}
}

func (s *contactService) Send(ctx context.Context, req *dto.ContactRequest) error {
	err := s.mailer.SendContactMessage(s.companyEmail, mailer.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		s.logger.Error("CONTACT", "Contact email failed", map[string]interface{}{"from": req.Email, "error": err.Error()})
		return ErrContactDelivery
	}
	s.logger.Info("CONTACT", "Contact message forwarded", map[string]interface{}{"from": req.Email})
	return nil
}
