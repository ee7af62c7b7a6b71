package service

import (
	"context"
	"errors"
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

type IAdminService interface {
	ListUsers(ctx context.Context, search string, limit, offset int) ([]dto.UserProfileResponse, error)
	ListLawyers(ctx context.Context, search string, limit, offset int) ([]dto.LawyerProfileResponse, error)
	PendingLawyers(ctx context.Context) ([]dto.LawyerProfileResponse, error)
	ApproveLawyer(ctx context.Context, lawyerID uuid.UUID) error
	DeletionRequests(ctx context.Context) (*dto.DeletionRequestsResponse, error)
	ApproveDeletion(ctx context.Context, accountID uuid.UUID, accountType string) error
	GetLogs(ctx context.Context, filter logger.LogFilter) (*dto.LogListResponse, error)
	GetLogDetail(ctx context.Context, id string) (*logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	directory  *LawyerDirectoryCache
	publisher  events.Publisher
	logger     logger.ILogger
	now        func() time.Time
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, directory *LawyerDirectoryCache, publisher events.Publisher, log logger.ILogger) IAdminService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &adminService{
		uowFactory: uowFactory,
		directory:  directory,
		publisher:  publisher,
		logger:     log,
		now:        time.Now,
	}
}

func (s *adminService) ListUsers(ctx context.Context, search string, limit, offset int) ([]dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx,
		specification.NameOrEmailLike{Query: search},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]dto.UserProfileResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserProfile(u, now))
	}
	return out, nil
}

func (s *adminService) ListLawyers(ctx context.Context, search string, limit, offset int) ([]dto.LawyerProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	lawyers, err := uow.LawyerRepository().FindAll(ctx,
		specification.NameOrEmailLike{Query: search},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}
	return lawyerProfiles(lawyers), nil
}

func lawyerProfiles(lawyers []*entity.Lawyer) []dto.LawyerProfileResponse {
	out := make([]dto.LawyerProfileResponse, 0, len(lawyers))
	for _, l := range lawyers {
		out = append(out, toLawyerProfile(l))
	}
	return out
}

func (s *adminService) PendingLawyers(ctx context.Context) ([]dto.LawyerProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	lawyers, err := uow.LawyerRepository().FindAll(ctx,
		specification.PendingLawyers{},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	return lawyerProfiles(lawyers), nil
}

func (s *adminService) ApproveLawyer(ctx context.Context, lawyerID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	lawyer, err := uow.LawyerRepository().FindOne(ctx, specification.ByID{ID: lawyerID})
	if err != nil {
		return err
	}
	if lawyer == nil {
		return newError(ErrNotFound, "Lawyer not found")
	}
	if lawyer.IsApproved {
		return nil
	}

	if err := uow.LawyerRepository().Approve(ctx, lawyer.Id, s.now()); err != nil {
		return err
	}
	if s.directory != nil {
		s.directory.Flush()
	}

	s.logger.Info("ADMIN", "Lawyer approved", map[string]interface{}{"lawyer_id": lawyer.Id.String()})
	evt := events.New(events.LawyerApproved, map[string]interface{}{
		"recipient_id":   lawyer.Id.String(),
		"recipient_role": RoleLawyer,
		"full_name":      lawyer.FullName,
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("ADMIN", "Failed to publish event", map[string]interface{}{"type": evt.Type, "error": err.Error()})
	}
	return nil
}

func (s *adminService) DeletionRequests(ctx context.Context) (*dto.DeletionRequestsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx, specification.DeletionRequested{}, specification.OrderBy{Field: "deletion_requested_at"})
	if err != nil {
		return nil, err
	}
	lawyers, err := uow.LawyerRepository().FindAll(ctx, specification.DeletionRequested{}, specification.OrderBy{Field: "deletion_requested_at"})
	if err != nil {
		return nil, err
	}

	now := s.now()
	res := &dto.DeletionRequestsResponse{
		Users:   make([]dto.UserProfileResponse, 0, len(users)),
		Lawyers: lawyerProfiles(lawyers),
	}
	for _, u := range users {
		res.Users = append(res.Users, toUserProfile(u, now))
	}
	return res, nil
}

var codePurposes = []string{mailer.PurposeSignup, mailer.PurposePasswordReset, mailer.PurposePasswordChange}

// ApproveDeletion hard deletes the account and everything that belongs to it.
func (s *adminService) ApproveDeletion(ctx context.Context, accountID uuid.UUID, accountType string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	switch accountType {
	case RoleUser:
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: accountID})
		if err != nil {
			return err
		}
		if user == nil {
			return newError(ErrNotFound, "User not found")
		}
	case RoleLawyer:
		lawyer, err := uow.LawyerRepository().FindOne(ctx, specification.ByID{ID: accountID})
		if err != nil {
			return err
		}
		if lawyer == nil {
			return newError(ErrNotFound, "Lawyer not found")
		}
	default:
		return newError(ErrValidation, "type must be user or lawyer")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for _, purpose := range codePurposes {
		if err := uow.VerificationCodeRepository().DeleteForAccount(ctx, accountID, purpose); err != nil {
			return err
		}
	}
	if err := uow.NotificationRepository().DeleteByRecipient(ctx, accountID); err != nil {
		return err
	}

	if accountType == RoleUser {
		if err := s.deleteUserData(ctx, uow, accountID); err != nil {
			return err
		}
	} else {
		if err := uow.ConversationRepository().DeleteByLawyer(ctx, accountID); err != nil {
			return err
		}
		if err := uow.LawyerRepository().Delete(ctx, accountID); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if accountType == RoleLawyer && s.directory != nil {
		s.directory.Flush()
	}
	s.logger.Info("ADMIN", "Account deleted", map[string]interface{}{"account_id": accountID.String(), "type": accountType})
	return nil
}

func (s *adminService) deleteUserData(ctx context.Context, uow unitofwork.UnitOfWork, userID uuid.UUID) error {
	if err := uow.ChatHistoryRepository().DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := uow.ConsultationRepository().DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := uow.ConversationRepository().DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := uow.PaymentRepository().DeleteByUser(ctx, userID); err != nil {
		return err
	}
	return uow.UserRepository().Delete(ctx, userID)
}

func (s *adminService) GetLogs(ctx context.Context, filter logger.LogFilter) (*dto.LogListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	logs, err := s.logger.GetLogs(filter)
	if err != nil {
		return nil, err
	}
	return &dto.LogListResponse{Logs: logs, Limit: filter.Limit, Offset: filter.Offset}, nil
}

func (s *adminService) GetLogDetail(ctx context.Context, id string) (*logger.LogEntry, error) {
	entry, err := s.logger.GetLogById(id)
	if err != nil {
		if errors.Is(err, logger.ErrLogNotFound) {
			return nil, newError(ErrNotFound, "Log entry not found")
		}
		return nil, err
	}
	return entry, nil
}
