package service

import (
	"context"
	"strings"
	"time"

	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/internal/pkg/mailer"
	"samvidhan-be/internal/repository/specification"
	"samvidhan-be/internal/repository/unitofwork"
	"samvidhan-be/pkg/events"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	RequestPasswordChange(ctx context.Context, userID uuid.UUID) (*dto.ChangePasswordRequestResponse, error)
	VerifyPasswordChange(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordVerifyRequest) error
	RequestDeletion(ctx context.Context, userID uuid.UUID) error
	GiveConsent(ctx context.Context, userID uuid.UUID) error
	GetChatHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]dto.ChatHistoryItem, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	otpQueue   OTPQueue
	publisher  events.Publisher
	logger     logger.ILogger
	opts       AuthOptions
	now        func() time.Time
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, otpQueue OTPQueue, publisher events.Publisher, log logger.ILogger, opts AuthOptions) IUserService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if opts.OTPTTL <= 0 {
		opts.OTPTTL = 10 * time.Minute
	}
	return &userService{
		uowFactory: uowFactory,
		otpQueue:   otpQueue,
		publisher:  publisher,
		logger:     log,
		opts:       opts,
		now:        time.Now,
	}
}

func (s *userService) findUser(ctx context.Context, uow unitofwork.UnitOfWork, userID uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, newError(ErrNotFound, "User not found")
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.findUser(ctx, uow, userID)
	if err != nil {
		return nil, err
	}
	res := toUserProfile(user, s.now())
	return &res, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.findUser(ctx, uow, userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.FullName); name != "" {
		user.FullName = name
	}
	user.ProblemDescription = req.ProblemDescription
	if req.Language != "" {
		user.Language = req.Language
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	res := toUserProfile(user, s.now())
	return &res, nil
}

func (s *userService) RequestPasswordChange(ctx context.Context, userID uuid.UUID) (*dto.ChangePasswordRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.findUser(ctx, uow, userID)
	if err != nil {
		return nil, err
	}

	otp, err := generateOTP()
	if err != nil {
		return nil, err
	}
	code := &entity.VerificationCode{
		Id:          uuid.New(),
		AccountId:   user.Id,
		AccountType: entity.AccountTypeUser,
		Purpose:     mailer.PurposePasswordChange,
		Channel:     entity.OTPChannelEmail,
		Code:        otp,
		ExpiresAt:   s.now().Add(s.opts.OTPTTL),
	}
	if err := uow.VerificationCodeRepository().Replace(ctx, code); err != nil {
		return nil, err
	}

	if s.otpQueue != nil {
		if err := s.otpQueue.Enqueue(ctx, OTPMessage{Email: user.Email, Code: otp, Purpose: mailer.PurposePasswordChange}); err != nil {
			s.logger.Error("USER", "Failed to queue OTP email", map[string]interface{}{"user_id": user.Id.String(), "error": err.Error()})
		}
	}

	res := &dto.ChangePasswordRequestResponse{}
	if s.opts.ExposeOTP {
		res.Otp = otp
	}
	return res, nil
}

func (s *userService) VerifyPasswordChange(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordVerifyRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findUser(ctx, uow, userID); err != nil {
		return err
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := consumeEmailCode(ctx, uow, userID, mailer.PurposePasswordChange, req.Otp, s.now()); err != nil {
		return err
	}
	if err := uow.UserRepository().UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *userService) RequestDeletion(ctx context.Context, userID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.findUser(ctx, uow, userID)
	if err != nil {
		return err
	}
	if err := uow.UserRepository().RequestDeletion(ctx, user.Id, s.now()); err != nil {
		return err
	}

	evt := events.New(events.DeletionRequested, map[string]interface{}{
		"account_id":   user.Id.String(),
		"account_type": string(entity.AccountTypeUser),
		"full_name":    user.FullName,
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("USER", "Failed to publish event", map[string]interface{}{"type": evt.Type, "error": err.Error()})
	}
	return nil
}

func (s *userService) GiveConsent(ctx context.Context, userID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.findUser(ctx, uow, userID)
	if err != nil {
		return err
	}
	now := s.now()
	user.ConsentGiven = true
	user.ConsentAt = &now
	return uow.UserRepository().Update(ctx, user)
}

// GetChatHistory returns entries oldest first. A zero limit returns everything.
func (s *userService) GetChatHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]dto.ChatHistoryItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findUser(ctx, uow, userID); err != nil {
		return nil, err
	}

	entries, err := uow.ChatHistoryRepository().ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ChatHistoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ChatHistoryItem{
			Id:        e.Id,
			Query:     e.Query,
			Response:  e.Response,
			Mode:      string(e.Mode),
			IsPremium: e.IsPremium,
			Citations: nonNil(e.Citations),
			Timestamp: e.CreatedAt,
		})
	}
	return items, nil
}
