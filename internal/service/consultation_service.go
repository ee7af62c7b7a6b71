package service

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/internal/repository/specification"
	"samvidhan-be/internal/repository/unitofwork"
	"samvidhan-be/pkg/events"
	"samvidhan-be/pkg/legal"
	"samvidhan-be/pkg/llm"
	"samvidhan-be/pkg/rag/prompt"
	"samvidhan-be/pkg/rag/response"

	"github.com/google/uuid"
)

// Fixed bodies for the two failure answers of POST /api/consultation.
const (
	UnavailableMessage    = "AI Service Unavailable"
	UnavailableResponse   = "The AI service is currently unavailable because the API key is missing. Please contact the administrator to configure the AI provider credentials."
	UnavailableDisclaimer = "System Error: Essential configuration missing."

	ProcessingFailedMessage  = "Failed to process AI response"
	ProcessingFailedResponse = "Sorry, I am having trouble connecting to the AI service right now. Please try again later."
)

const defaultAIRequestTimeout = 30 * time.Second

type IConsultationService interface {
	Consult(ctx context.Context, userID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error)
}

type consultationService struct {
	uowFactory unitofwork.RepositoryFactory
	catalog    *legal.Catalog
	provider   llm.LLMProvider
	publisher  events.Publisher
	logger     logger.ILogger
	timeout    time.Duration
	now        func() time.Time
}

// NewConsultationService accepts a nil provider: every consultation then answers
// with ErrConfigurationMissing.
func NewConsultationService(
	uowFactory unitofwork.RepositoryFactory,
	catalog *legal.Catalog,
	provider llm.LLMProvider,
	publisher events.Publisher,
	log logger.ILogger,
	timeout time.Duration,
) IConsultationService {
	if catalog == nil {
		catalog = legal.DefaultCatalog()
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if timeout <= 0 {
		timeout = defaultAIRequestTimeout
	}
	return &consultationService{
		uowFactory: uowFactory,
		catalog:    catalog,
		provider:   provider,
		publisher:  publisher,
		logger:     log,
		timeout:    timeout,
		now:        time.Now,
	}
}

type visualPayload struct {
	raw      string
	mimeType string
	data     []byte
}

// decodeVisualData accepts plain base64 or a data URL.
func decodeVisualData(raw string) (*visualPayload, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	encoded := raw
	mimeType := ""
	if strings.HasPrefix(raw, "data:") {
		header, body, ok := strings.Cut(raw, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return nil, newError(ErrValidation, "visualData must be base64 encoded")
		}
		mimeType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		encoded = body
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, newError(ErrValidation, "visualData must be base64 encoded")
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return &visualPayload{raw: raw, mimeType: mimeType, data: data}, nil
}

func (s *consultationService) Consult(ctx context.Context, userID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, newError(ErrValidation, "Query is required")
	}

	mode := entity.ConsultationMode(strings.ToLower(strings.TrimSpace(req.Mode)))
	if mode == "" {
		mode = entity.ModeText
	}
	if !mode.Valid() {
		return nil, newError(ErrValidation, "Mode must be one of text, voice or visual")
	}

	visual, err := decodeVisualData(req.VisualData)
	if err != nil {
		return nil, err
	}

	if s.provider == nil {
		s.logger.Warn("CONSULTATION", "AI provider is not configured, refusing consultation", map[string]interface{}{"user_id": userID.String()})
		return nil, ErrConfigurationMissing
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, newError(ErrNotFound, "User not found")
	}
	isPremium := user.HasPremium(s.now())

	match := s.catalog.Match(query)
	result, outcome := s.answer(ctx, query, mode, visual, match)

	record := &entity.Consultation{
		Id:         uuid.New(),
		UserId:     user.Id,
		Query:      query,
		Mode:       mode,
		Response:   result.Answer.Response,
		Citations:  result.Answer.Citations,
		Disclaimer: result.Answer.Disclaimer,
		IsPremium:  isPremium,
		Outcome:    outcome,
	}
	if match.Matched() {
		record.TopicId = match.Topic.ID
	}
	if visual != nil {
		record.VisualData = &visual.raw
	}

	if err := s.record(ctx, uow, record); err != nil {
		s.logger.Error("CONSULTATION", "Failed to record consultation", map[string]interface{}{"user_id": user.Id.String(), "error": err.Error()})
		return nil, ErrPersistence
	}

	evt := events.New(events.ConsultationRecorded, map[string]interface{}{
		"user_id":         user.Id.String(),
		"consultation_id": record.Id.String(),
		"mode":            string(mode),
		"topic_id":        record.TopicId,
		"outcome":         outcome,
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("CONSULTATION", "Failed to publish event", map[string]interface{}{"type": evt.Type, "error": err.Error()})
	}

	return &dto.ConsultationResponse{
		Response:   result.Answer.Response,
		Citations:  result.Answer.Citations,
		Disclaimer: result.Answer.Disclaimer,
		IsPremium:  isPremium,
	}, nil
}

// answer makes the single model call and never fails: upstream errors degrade to
// the reference material.
func (s *consultationService) answer(ctx context.Context, query string, mode entity.ConsultationMode, visual *visualPayload, match legal.MatchResult) (response.Result, string) {
	text := prompt.NewLegalBuilder(query, match).WithMode(string(mode)).Build()

	opts := []llm.Option{
		llm.WithSystemInstruction(prompt.SystemInstruction),
		llm.WithJSONOutput(),
	}
	if mode == entity.ModeVisual && visual != nil {
		opts = append(opts, llm.WithImage(visual.mimeType, visual.data))
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.provider.Generate(callCtx, text, opts...)
	if err != nil {
		details := map[string]interface{}{"error": err.Error(), "matched": match.Matched()}
		if errors.Is(err, context.DeadlineExceeded) {
			details["timeout"] = s.timeout.String()
		}
		s.logger.Warn("CONSULTATION", "AI provider unavailable, answering from reference material", details)
		return response.Degraded(match, err.Error()), entity.OutcomeDegraded
	}

	result := response.Normalize(raw, match)
	if result.Kind == response.KindFallback {
		s.logger.Warn("CONSULTATION", "Model output was not valid JSON, using raw text", map[string]interface{}{"reason": result.Reason})
		return result, entity.OutcomeFallback
	}
	return result, entity.OutcomeParsed
}

func (s *consultationService) record(ctx context.Context, uow unitofwork.UnitOfWork, record *entity.Consultation) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ConsultationRepository().Create(ctx, record); err != nil {
		return err
	}

	entry := &entity.ChatHistoryEntry{
		Id:             uuid.New(),
		UserId:         record.UserId,
		ConsultationId: record.Id,
		Query:          record.Query,
		Response:       record.Response,
		Mode:           record.Mode,
		IsPremium:      record.IsPremium,
		Citations:      record.Citations,
	}
	if err := uow.ChatHistoryRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit()
}
