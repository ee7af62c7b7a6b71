package mapper

import (
	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                  u.Id,
		FullName:            u.FullName,
		Email:               u.Email,
		Phone:               u.Phone,
		PasswordHash:        u.PasswordHash,
		EmailVerified:       u.EmailVerified,
		PhoneVerified:       u.PhoneVerified,
		IsVerified:          u.IsVerified,
		IsPremium:           u.IsPremium,
		PremiumExpiresAt:    u.PremiumExpiresAt,
		AdsRemoved:          u.AdsRemoved,
		ProblemDescription:  u.ProblemDescription,
		Language:            u.Language,
		ConsentGiven:        u.ConsentGiven,
		ConsentAt:           u.ConsentAt,
		DeletionRequested:   u.DeletionRequested,
		DeletionRequestedAt: u.DeletionRequestedAt,
		LastLogin:           u.LastLogin,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                  u.Id,
		FullName:            u.FullName,
		Email:               u.Email,
		Phone:               u.Phone,
		PasswordHash:        u.PasswordHash,
		EmailVerified:       u.EmailVerified,
		PhoneVerified:       u.PhoneVerified,
		IsVerified:          u.IsVerified,
		IsPremium:           u.IsPremium,
		PremiumExpiresAt:    u.PremiumExpiresAt,
		AdsRemoved:          u.AdsRemoved,
		ProblemDescription:  u.ProblemDescription,
		Language:            u.Language,
		ConsentGiven:        u.ConsentGiven,
		ConsentAt:           u.ConsentAt,
		DeletionRequested:   u.DeletionRequested,
		DeletionRequestedAt: u.DeletionRequestedAt,
		LastLogin:           u.LastLogin,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	out := make([]*entity.User, 0, len(users))
	for _, u := range users {
		out = append(out, m.ToEntity(u))
	}
	return out
}
