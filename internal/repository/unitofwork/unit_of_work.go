package unitofwork

import (
	"context"

	"samvidhan-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	LawyerRepository() contract.LawyerRepository
	AdminRepository() contract.AdminRepository
	VerificationCodeRepository() contract.VerificationCodeRepository

	ConsultationRepository() contract.ConsultationRepository
	ChatHistoryRepository() contract.ChatHistoryRepository
	ConversationRepository() contract.ConversationRepository

	AdRepository() contract.AdRepository
	PaymentRepository() contract.PaymentRepository
	NotificationRepository() contract.NotificationRepository
}
