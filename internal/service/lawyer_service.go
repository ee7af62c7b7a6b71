package service

import (
	"context"
	"strings"

	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/repository/memory"
	"samvidhan-be/internal/repository/specification"
	"samvidhan-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const directoryCacheKey = "approved"

// LawyerDirectoryCache holds the public listing of approved lawyers.
type LawyerDirectoryCache = memory.CacheRepository[[]dto.LawyerProfileResponse]

type ILawyerService interface {
	GetProfile(ctx context.Context, lawyerID uuid.UUID) (*dto.LawyerProfileResponse, error)
	UpdateProfile(ctx context.Context, lawyerID uuid.UUID, req *dto.UpdateLawyerProfileRequest) (*dto.LawyerProfileResponse, error)
	Messages(ctx context.Context, lawyerID uuid.UUID) ([]dto.ConversationResponse, error)
	Reply(ctx context.Context, lawyerID uuid.UUID, req *dto.LawyerReplyRequest) (*dto.MessageResponse, error)
	Directory(ctx context.Context, specialization string) ([]dto.LawyerProfileResponse, error)
}

type lawyerService struct {
	uowFactory unitofwork.RepositoryFactory
	messaging  IMessagingService
	directory  *LawyerDirectoryCache
}

func NewLawyerService(uowFactory unitofwork.RepositoryFactory, messaging IMessagingService, directory *LawyerDirectoryCache) ILawyerService {
	return &lawyerService{
		uowFactory: uowFactory,
		messaging:  messaging,
		directory:  directory,
	}
}

func (s *lawyerService) findLawyer(ctx context.Context, uow unitofwork.UnitOfWork, lawyerID uuid.UUID) (*entity.Lawyer, error) {
	lawyer, err := uow.LawyerRepository().FindOne(ctx, specification.ByID{ID: lawyerID})
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, newError(ErrNotFound, "Lawyer not found")
	}
	return lawyer, nil
}

func (s *lawyerService) GetProfile(ctx context.Context, lawyerID uuid.UUID) (*dto.LawyerProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	lawyer, err := s.findLawyer(ctx, uow, lawyerID)
	if err != nil {
		return nil, err
	}
	res := toLawyerProfile(lawyer)
	return &res, nil
}

// UpdateProfile applies only the whitelisted fields. Credentials, bar number and
// approval state cannot be changed here.
func (s *lawyerService) UpdateProfile(ctx context.Context, lawyerID uuid.UUID, req *dto.UpdateLawyerProfileRequest) (*dto.LawyerProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	lawyer, err := s.findLawyer(ctx, uow, lawyerID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil && strings.TrimSpace(*req.FullName) != "" {
		lawyer.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Specialization != nil {
		lawyer.Specializations = []string(*req.Specialization)
	}
	if req.Experience != nil {
		lawyer.Experience = *req.Experience
	}
	if req.CourtJurisdiction != nil {
		lawyer.CourtJurisdiction = *req.CourtJurisdiction
	}
	if req.Address != nil {
		lawyer.Address = *req.Address
	}
	if req.Bio != nil {
		lawyer.Bio = *req.Bio
	}
	if req.ConsultationFee != nil {
		lawyer.ConsultationFee = *req.ConsultationFee
	}
	if req.Available != nil {
		lawyer.Available = *req.Available
	}

	if err := uow.LawyerRepository().Update(ctx, lawyer); err != nil {
		return nil, err
	}
	if s.directory != nil {
		s.directory.Flush()
	}

	res := toLawyerProfile(lawyer)
	return &res, nil
}

func (s *lawyerService) Messages(ctx context.Context, lawyerID uuid.UUID) ([]dto.ConversationResponse, error) {
	return s.messaging.Conversations(ctx, lawyerID, RoleLawyer)
}

func (s *lawyerService) Reply(ctx context.Context, lawyerID uuid.UUID, req *dto.LawyerReplyRequest) (*dto.MessageResponse, error) {
	return s.messaging.Send(ctx, lawyerID, RoleLawyer, req.UserId, req.Message)
}

// Directory lists approved lawyers, optionally filtered by specialization.
func (s *lawyerService) Directory(ctx context.Context, specialization string) ([]dto.LawyerProfileResponse, error) {
	specialization = strings.TrimSpace(specialization)
	key := directoryCacheKey + ":" + strings.ToLower(specialization)

	if s.directory != nil {
		if cached, ok := s.directory.Get(key); ok {
			return cached, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	lawyers, err := uow.LawyerRepository().FindAll(ctx,
		specification.ApprovedLawyers{},
		specification.WithSpecialization{Specialization: specialization},
		specification.OrderBy{Field: "rating", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LawyerProfileResponse, 0, len(lawyers))
	for _, l := range lawyers {
		out = append(out, toLawyerProfile(l))
	}
	if s.directory != nil {
		s.directory.Save(key, out)
	}
	return out, nil
}
