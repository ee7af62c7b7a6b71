package mapper

import (
	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/model"

	"gorm.io/datatypes"
)

type ConsultationMapper struct{}

func NewConsultationMapper() *ConsultationMapper {
	return &ConsultationMapper{}
}

func citations(c []string) datatypes.JSONSlice[string] {
	if c == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](c)
}

func (m *ConsultationMapper) ToEntity(c *model.Consultation) *entity.Consultation {
	if c == nil {
		return nil
	}
	return &entity.Consultation{
		Id:         c.Id,
		UserId:     c.UserId,
		Query:      c.Query,
		Mode:       entity.ConsultationMode(c.Mode),
		Response:   c.Response,
		Citations:  []string(c.Citations),
		Disclaimer: c.Disclaimer,
		IsPremium:  c.IsPremium,
		VisualData: c.VisualData,
		TopicId:    c.TopicId,
		Outcome:    c.Outcome,
		CreatedAt:  c.CreatedAt,
	}
}

func (m *ConsultationMapper) ToModel(c *entity.Consultation) *model.Consultation {
	if c == nil {
		return nil
	}
	return &model.Consultation{
		Id:         c.Id,
		UserId:     c.UserId,
		Query:      c.Query,
		Mode:       string(c.Mode),
		Response:   c.Response,
		Citations:  citations(c.Citations),
		Disclaimer: c.Disclaimer,
		IsPremium:  c.IsPremium,
		VisualData: c.VisualData,
		TopicId:    c.TopicId,
		Outcome:    c.Outcome,
		CreatedAt:  c.CreatedAt,
	}
}

func (m *ConsultationMapper) ToEntities(items []*model.Consultation) []*entity.Consultation {
	out := make([]*entity.Consultation, 0, len(items))
	for _, c := range items {
		out = append(out, m.ToEntity(c))
	}
	return out
}

func (m *ConsultationMapper) HistoryToEntity(h *model.ChatHistoryEntry) *entity.ChatHistoryEntry {
	if h == nil {
		return nil
	}
	return &entity.ChatHistoryEntry{
		Id:             h.Id,
		UserId:         h.UserId,
		ConsultationId: h.ConsultationId,
		Query:          h.Query,
		Response:       h.Response,
		Mode:           entity.ConsultationMode(h.Mode),
		IsPremium:      h.IsPremium,
		Citations:      []string(h.Citations),
		CreatedAt:      h.CreatedAt,
	}
}

func (m *ConsultationMapper) HistoryToModel(h *entity.ChatHistoryEntry) *model.ChatHistoryEntry {
	if h == nil {
		return nil
	}
	return &model.ChatHistoryEntry{
		Id:             h.Id,
		UserId:         h.UserId,
		ConsultationId: h.ConsultationId,
		Query:          h.Query,
		Response:       h.Response,
		Mode:           string(h.Mode),
		IsPremium:      h.IsPremium,
		Citations:      citations(h.Citations),
		CreatedAt:      h.CreatedAt,
	}
}

func (m *ConsultationMapper) HistoryToEntities(items []*model.ChatHistoryEntry) []*entity.ChatHistoryEntry {
	out := make([]*entity.ChatHistoryEntry, 0, len(items))
	for _, h := range items {
		out = append(out, m.HistoryToEntity(h))
	}
	return out
}
