package mapper

import (
	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/model"

	"gorm.io/datatypes"
)

type LawyerMapper struct{}

func NewLawyerMapper() *LawyerMapper {
	return &LawyerMapper{}
}

func (m *LawyerMapper) ToEntity(l *model.Lawyer) *entity.Lawyer {
	if l == nil {
		return nil
	}
	return &entity.Lawyer{
		Id:                  l.Id,
		FullName:            l.FullName,
		Email:               l.Email,
		Phone:               l.Phone,
		PasswordHash:        l.PasswordHash,
		BarCouncilNumber:    l.BarCouncilNumber,
		AadhaarNumber:       l.AadhaarNumber,
		Specializations:     []string(l.Specializations),
		Experience:          l.Experience,
		CourtJurisdiction:   l.CourtJurisdiction,
		Address:             l.Address,
		Bio:                 l.Bio,
		Rating:              l.Rating,
		ConsultationFee:     l.ConsultationFee,
		Available:           l.Available,
		EmailVerified:       l.EmailVerified,
		PhoneVerified:       l.PhoneVerified,
		IsVerified:          l.IsVerified,
		IsApproved:          l.IsApproved,
		ApprovedAt:          l.ApprovedAt,
		DeletionRequested:   l.DeletionRequested,
		DeletionRequestedAt: l.DeletionRequestedAt,
		LastLogin:           l.LastLogin,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}
}

func (m *LawyerMapper) ToModel(l *entity.Lawyer) *model.Lawyer {
	if l == nil {
		return nil
	}
	specs := l.Specializations
	if specs == nil {
		specs = []string{}
	}
	return &model.Lawyer{
		Id:                  l.Id,
		FullName:            l.FullName,
		Email:               l.Email,
		Phone:               l.Phone,
		PasswordHash:        l.PasswordHash,
		BarCouncilNumber:    l.BarCouncilNumber,
		AadhaarNumber:       l.AadhaarNumber,
		Specializations:     datatypes.JSONSlice[string](specs),
		Experience:          l.Experience,
		CourtJurisdiction:   l.CourtJurisdiction,
		Address:             l.Address,
		Bio:                 l.Bio,
		Rating:              l.Rating,
		ConsultationFee:     l.ConsultationFee,
		Available:           l.Available,
		EmailVerified:       l.EmailVerified,
		PhoneVerified:       l.PhoneVerified,
		IsVerified:          l.IsVerified,
		IsApproved:          l.IsApproved,
		ApprovedAt:          l.ApprovedAt,
		DeletionRequested:   l.DeletionRequested,
		DeletionRequestedAt: l.DeletionRequestedAt,
		LastLogin:           l.LastLogin,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}
}

func (m *LawyerMapper) ToEntities(lawyers []*model.Lawyer) []*entity.Lawyer {
	out := make([]*entity.Lawyer, 0, len(lawyers))
	for _, l := range lawyers {
		out = append(out, m.ToEntity(l))
	}
	return out
}

func AdminToEntity(a *model.Admin) *entity.Admin {
	if a == nil {
		return nil
	}
	return &entity.Admin{
		Id:           a.Id,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		LastLogin:    a.LastLogin,
		CreatedAt:    a.CreatedAt,
	}
}

func AdminToModel(a *entity.Admin) *model.Admin {
	if a == nil {
		return nil
	}
	return &model.Admin{
		Id:           a.Id,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		LastLogin:    a.LastLogin,
		CreatedAt:    a.CreatedAt,
	}
}
