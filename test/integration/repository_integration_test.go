package integration

import (
	"context"
	"testing"
	"time"

	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/repository/specification"
	"samvidhan-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepositories(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	suffix := uuid.NewString()[:8]
	user := &entity.User{
		Id:           uuid.New(),
		FullName:     "Integration User",
		Email:        "it-" + suffix + "@example.in",
		Phone:        "9" + suffix,
		PasswordHash: "x",
		Language:     "en",
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	t.Cleanup(func() { _ = uow.UserRepository().Delete(ctx, user.Id) })

	err := uow.UserRepository().Create(ctx, &entity.User{Id: uuid.New(), FullName: "dup", Email: user.Email, Phone: "8" + suffix, PasswordHash: "x"})
	assert.Error(t, err, "email is unique")

	found, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: user.Email})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.Id, found.Id)

	require.NoError(t, uow.UserRepository().MarkVerified(ctx, user.Id))
	until := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	require.NoError(t, uow.UserRepository().GrantPremium(ctx, user.Id, until))

	found, err = uow.UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
	require.NoError(t, err)
	assert.True(t, found.IsVerified)
	assert.True(t, found.HasPremium(time.Now()))

	lawyer := &entity.Lawyer{
		Id:               uuid.New(),
		FullName:         "Integration Lawyer",
		Email:            "it-lawyer-" + suffix + "@example.in",
		Phone:            "7" + suffix,
		PasswordHash:     "x",
		BarCouncilNumber: "IT/" + suffix,
		AadhaarNumber:    "1234" + suffix,
		Specializations:  []string{"Family Law"},
	}
	require.NoError(t, uow.LawyerRepository().Create(ctx, lawyer))
	t.Cleanup(func() { _ = uow.LawyerRepository().Delete(ctx, lawyer.Id) })
	require.NoError(t, uow.LawyerRepository().MarkVerified(ctx, lawyer.Id))
	require.NoError(t, uow.LawyerRepository().Approve(ctx, lawyer.Id, time.Now()))

	directory, err := uow.LawyerRepository().FindAll(ctx,
		specification.ApprovedLawyers{},
		specification.WithSpecialization{Specialization: "Family Law"},
	)
	require.NoError(t, err)
	ids := make([]uuid.UUID, 0, len(directory))
	for _, l := range directory {
		ids = append(ids, l.Id)
	}
	assert.Contains(t, ids, lawyer.Id)
}

func TestConsultationRollsBackWithHistory(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(db)

	suffix := uuid.NewString()[:8]
	user := &entity.User{Id: uuid.New(), FullName: "Rollback User", Email: "rb-" + suffix + "@example.in", Phone: "6" + suffix, PasswordHash: "x"}
	setup := factory.NewUnitOfWork(ctx)
	require.NoError(t, setup.UserRepository().Create(ctx, user))
	t.Cleanup(func() {
		_ = setup.ChatHistoryRepository().DeleteByUser(ctx, user.Id)
		_ = setup.ConsultationRepository().DeleteByUser(ctx, user.Id)
		_ = setup.UserRepository().Delete(ctx, user.Id)
	})

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	record := &entity.Consultation{
		Id: uuid.New(), UserId: user.Id, Query: "What are my rights?", Mode: entity.ModeText,
		Response: "r", Citations: []string{"Article 21"}, Outcome: entity.OutcomeParsed,
	}
	require.NoError(t, uow.ConsultationRepository().Create(ctx, record))
	require.NoError(t, uow.Rollback())

	count, err := setup.ConsultationRepository().Count(ctx, specification.ByUserID{UserID: user.Id})
	require.NoError(t, err)
	assert.Zero(t, count)

	uow = factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ConsultationRepository().Create(ctx, record))
	require.NoError(t, uow.ChatHistoryRepository().Append(ctx, &entity.ChatHistoryEntry{
		Id: uuid.New(), UserId: user.Id, ConsultationId: record.Id, Query: record.Query, Response: record.Response, Mode: record.Mode,
	}))
	require.NoError(t, uow.Commit())

	history, err := setup.ChatHistoryRepository().ListByUser(ctx, user.Id, 10, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, record.Id, history[0].ConsultationId)
}

func TestPaymentStatusUpdateIsConditional(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	suffix := uuid.NewString()[:8]
	user := &entity.User{Id: uuid.New(), FullName: "Payment User", Email: "pay-" + suffix + "@example.in", Phone: "5" + suffix, PasswordHash: "x"}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	t.Cleanup(func() {
		_ = uow.PaymentRepository().DeleteByUser(ctx, user.Id)
		_ = uow.UserRepository().Delete(ctx, user.Id)
	})

	payment := &entity.Payment{
		Id: uuid.New(), UserId: user.Id, Amount: 2999, Currency: "INR",
		PaymentType: entity.PaymentTypePremium, Status: entity.PaymentStatusPending, TransactionId: "it-" + suffix,
	}
	require.NoError(t, uow.PaymentRepository().Create(ctx, payment))

	now := time.Now()
	updated, err := uow.PaymentRepository().UpdateStatus(ctx, payment.Id, entity.PaymentStatusCompleted, &now)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = uow.PaymentRepository().UpdateStatus(ctx, payment.Id, entity.PaymentStatusCompleted, &now)
	require.NoError(t, err)
	assert.False(t, updated)

	updated, err = uow.PaymentRepository().UpdateStatus(ctx, payment.Id, entity.PaymentStatusFailed, nil)
	require.NoError(t, err)
	assert.False(t, updated)
}
