package mapper

import (
	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/model"
)

func VerificationCodeToEntity(v *model.VerificationCode) *entity.VerificationCode {
	if v == nil {
		return nil
	}
	return &entity.VerificationCode{
		Id:          v.Id,
		AccountId:   v.AccountId,
		AccountType: entity.AccountType(v.AccountType),
		Purpose:     v.Purpose,
		Channel:     entity.OTPChannel(v.Channel),
		Code:        v.Code,
		ExpiresAt:   v.ExpiresAt,
		CreatedAt:   v.CreatedAt,
	}
}

func VerificationCodeToModel(v *entity.VerificationCode) *model.VerificationCode {
	if v == nil {
		return nil
	}
	return &model.VerificationCode{
		Id:          v.Id,
		AccountId:   v.AccountId,
		AccountType: string(v.AccountType),
		Purpose:     v.Purpose,
		Channel:     string(v.Channel),
		Code:        v.Code,
		ExpiresAt:   v.ExpiresAt,
		CreatedAt:   v.CreatedAt,
	}
}

func ConversationToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}
	return &entity.Conversation{
		Id:            c.Id,
		UserId:        c.UserId,
		LawyerId:      c.LawyerId,
		LastMessageAt: c.LastMessageAt,
		CreatedAt:     c.CreatedAt,
	}
}

func MessageToEntity(m *model.ConversationMessage) *entity.ConversationMessage {
	if m == nil {
		return nil
	}
	return &entity.ConversationMessage{
		Id:             m.Id,
		ConversationId: m.ConversationId,
		SenderId:       m.SenderId,
		SenderType:     entity.AccountType(m.SenderType),
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
	}
}

func MessageToModel(m *entity.ConversationMessage) *model.ConversationMessage {
	if m == nil {
		return nil
	}
	return &model.ConversationMessage{
		Id:             m.Id,
		ConversationId: m.ConversationId,
		SenderId:       m.SenderId,
		SenderType:     string(m.SenderType),
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
	}
}

func AdToEntity(a *model.Ad) *entity.Ad {
	if a == nil {
		return nil
	}
	return &entity.Ad{
		Id:          a.Id,
		Title:       a.Title,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		Link:        a.Link,
		Advertiser:  a.Advertiser,
		IsActive:    a.IsActive,
		Impressions: a.Impressions,
		Clicks:      a.Clicks,
		CreatedAt:   a.CreatedAt,
	}
}

func PaymentToEntity(p *model.Payment) *entity.Payment {
	if p == nil {
		return nil
	}
	return &entity.Payment{
		Id:            p.Id,
		UserId:        p.UserId,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentType:   entity.PaymentType(p.PaymentType),
		Status:        entity.PaymentStatus(p.Status),
		TransactionId: p.TransactionId,
		RedirectURL:   p.RedirectURL,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func PaymentToModel(p *entity.Payment) *model.Payment {
	if p == nil {
		return nil
	}
	return &model.Payment{
		Id:            p.Id,
		UserId:        p.UserId,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentType:   string(p.PaymentType),
		Status:        string(p.Status),
		TransactionId: p.TransactionId,
		RedirectURL:   p.RedirectURL,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
