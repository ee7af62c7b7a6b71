package service

import (
	"time"

	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/entity"
)

func toUserSummary(u *entity.User, now time.Time) *dto.UserSummary {
	return &dto.UserSummary{
		Id:           u.Id,
		FullName:     u.FullName,
		Email:        u.Email,
		Phone:        u.Phone,
		IsPremium:    u.HasPremium(now),
		ConsentGiven: u.ConsentGiven,
		AdsRemoved:   u.AdsRemoved,
	}
}

func toLawyerSummary(l *entity.Lawyer) *dto.LawyerSummary {
	return &dto.LawyerSummary{
		Id:               l.Id,
		FullName:         l.FullName,
		Email:            l.Email,
		Specialization:   nonNil(l.Specializations),
		BarCouncilNumber: l.BarCouncilNumber,
	}
}

func toUserProfile(u *entity.User, now time.Time) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		Id:                  u.Id,
		FullName:            u.FullName,
		Email:               u.Email,
		Phone:               u.Phone,
		IsVerified:          u.IsVerified,
		IsPremium:           u.HasPremium(now),
		PremiumExpiry:       u.PremiumExpiresAt,
		AdsRemoved:          u.AdsRemoved,
		ProblemDescription:  u.ProblemDescription,
		Language:            u.Language,
		ConsentGiven:        u.ConsentGiven,
		ConsentDate:         u.ConsentAt,
		DeletionRequested:   u.DeletionRequested,
		DeletionRequestDate: u.DeletionRequestedAt,
		LastLogin:           u.LastLogin,
		CreatedAt:           u.CreatedAt,
	}
}

func toLawyerProfile(l *entity.Lawyer) dto.LawyerProfileResponse {
	return dto.LawyerProfileResponse{
		Id:                l.Id,
		FullName:          l.FullName,
		Email:             l.Email,
		Phone:             l.Phone,
		BarCouncilNumber:  l.BarCouncilNumber,
		Specialization:    nonNil(l.Specializations),
		Experience:        l.Experience,
		CourtJurisdiction: l.CourtJurisdiction,
		Address:           l.Address,
		Bio:               l.Bio,
		Rating:            l.Rating,
		ConsultationFee:   l.ConsultationFee,
		Available:         l.Available,
		IsVerified:        l.IsVerified,
		IsApproved:        l.IsApproved,
		DeletionRequested: l.DeletionRequested,
		LastLogin:         l.LastLogin,
		CreatedAt:         l.CreatedAt,
	}
}

func toMessage(m *entity.ConversationMessage) dto.MessageResponse {
	return dto.MessageResponse{
		Id:        m.Id,
		Sender:    string(m.SenderType),
		SenderId:  m.SenderId,
		Content:   m.Content,
		Timestamp: m.CreatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
