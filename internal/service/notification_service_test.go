package service

import (
	"context"
	"encoding/json"
	"testing"

	"samvidhan-be/internal/model"
	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/pkg/events"
	pktNats "samvidhan-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubscriber struct {
	subject, durable string
	handler          pktNats.EventHandler
}

func (s *recordingSubscriber) Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error {
	s.subject, s.durable, s.handler = subject, durableName, handler
	return nil
}

func newNotificationFixture(t *testing.T) (*memStore, *recordingDelivery, *NotificationService) {
	t.Helper()
	store := newMemStore()
	store.notifTypes[events.MessageReceived] = &model.NotificationType{
		Code: events.MessageReceived, DisplayName: "New message", Template: "You have a new message from a {sender_role}", TargetType: TargetSelf, IsActive: true,
	}
	store.notifTypes[events.UserRegistered] = &model.NotificationType{
		Code: events.UserRegistered, DisplayName: "Welcome", Template: "Welcome to SamvidhanAI, {full_name}!", TargetType: TargetSelf, IsActive: true,
	}
	store.notifTypes[events.LawyerRegistered] = &model.NotificationType{
		Code: events.LawyerRegistered, DisplayName: "Lawyer awaiting approval", Template: "{full_name} ({bar_council_number}) is waiting for approval", TargetType: TargetAdmin, IsActive: true,
	}
	store.notifTypes[events.DeletionRequested] = &model.NotificationType{
		Code: events.DeletionRequested, DisplayName: "Deletion requested", Template: "x", TargetType: TargetAdmin, IsActive: false,
	}

	delivery := &recordingDelivery{}
	svc := NewNotificationService(memNotifications{store}, nil, delivery, logger.NewNopLogger())
	return store, delivery, svc
}

func TestHandleEvent_SelfTarget(t *testing.T) {
	store, delivery, svc := newNotificationFixture(t)
	lawyerID, userID := uuid.New(), uuid.New()

	err := svc.HandleEvent(context.Background(), events.New(events.MessageReceived, map[string]interface{}{
		"recipient_id":   lawyerID.String(),
		"recipient_role": RoleLawyer,
		"sender_id":      userID.String(),
		"sender_role":    RoleUser,
	}))
	require.NoError(t, err)

	require.Len(t, store.notifications, 1)
	n := store.notifications[0]
	assert.Equal(t, lawyerID, n.RecipientID)
	assert.Equal(t, RoleLawyer, n.RecipientRole)
	assert.Equal(t, "New message", n.Title)
	assert.Equal(t, "You have a new message from a user", n.Message)
	require.NotNil(t, n.ActorID)
	assert.Equal(t, userID, *n.ActorID)

	var meta map[string]interface{}
	require.NoError(t, json.Unmarshal(n.Metadata, &meta))
	assert.Equal(t, RoleUser, meta["sender_role"])

	require.Len(t, delivery.frames, 1)
	assert.Equal(t, lawyerID, delivery.frames[0].recipient)
	assert.Equal(t, FrameNotification, delivery.frames[0].frameType)
}

func TestHandleEvent_SelfTargetFallsBackToUserID(t *testing.T) {
	store, _, svc := newNotificationFixture(t)
	userID := uuid.New()

	require.NoError(t, svc.HandleEvent(context.Background(), events.New(events.UserRegistered, map[string]interface{}{
		"user_id":   userID.String(),
		"full_name": "Asha",
	})))

	require.Len(t, store.notifications, 1)
	assert.Equal(t, userID, store.notifications[0].RecipientID)
	assert.Equal(t, RoleUser, store.notifications[0].RecipientRole)
	assert.Equal(t, "Welcome to SamvidhanAI, Asha!", store.notifications[0].Message)
	assert.Nil(t, store.notifications[0].ActorID)
}

func TestHandleEvent_AdminTargetFansOut(t *testing.T) {
	store, delivery, svc := newNotificationFixture(t)
	for i := 0; i < 2; i++ {
		id := uuid.New()
		store.admins[id] = nil
	}

	require.NoError(t, svc.HandleEvent(context.Background(), events.New(events.LawyerRegistered, map[string]interface{}{
		"lawyer_id":          uuid.NewString(),
		"full_name":          "Adv. Kavya Iyer",
		"bar_council_number": "KAR/123/2015",
	})))

	require.Len(t, store.notifications, 2)
	for _, n := range store.notifications {
		assert.Equal(t, RoleAdmin, n.RecipientRole)
		assert.Equal(t, "Adv. Kavya Iyer (KAR/123/2015) is waiting for approval", n.Message)
	}
	assert.Len(t, delivery.frames, 2)
}

func TestHandleEvent_Ignored(t *testing.T) {
	tests := []struct {
		name  string
		event events.Event
	}{
		{"no notification type", events.New(events.ConsultationRecorded, map[string]interface{}{"user_id": uuid.NewString()})},
		{"inactive type", events.New(events.DeletionRequested, map[string]interface{}{"account_id": uuid.NewString()})},
		{"missing recipient", events.New(events.MessageReceived, map[string]interface{}{"sender_role": RoleUser})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, delivery, svc := newNotificationFixture(t)
			assert.NoError(t, svc.HandleEvent(context.Background(), tt.event))
			assert.Empty(t, store.notifications)
			assert.Empty(t, delivery.frames)
		})
	}
}

func TestNotificationInbox(t *testing.T) {
	store, _, svc := newNotificationFixture(t)
	ctx := context.Background()
	me := uuid.New()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.HandleEvent(ctx, events.New(events.MessageReceived, map[string]interface{}{
			"recipient_id": me.String(), "recipient_role": RoleUser, "sender_role": RoleLawyer,
		})))
	}

	list, total, err := svc.GetNotifications(ctx, me, 0, -1)
	require.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, int64(3), total)

	unread, err := svc.GetUnreadCount(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, int64(3), unread)

	require.NoError(t, svc.MarkAsRead(ctx, me, store.notifications[0].ID))
	unread, _ = svc.GetUnreadCount(ctx, me)
	assert.Equal(t, int64(2), unread)

	assert.ErrorIs(t, svc.MarkAsRead(ctx, uuid.New(), store.notifications[1].ID), ErrNotFound)

	require.NoError(t, svc.MarkAllAsRead(ctx, me))
	unread, _ = svc.GetUnreadCount(ctx, me)
	assert.Zero(t, unread)
}

func TestNotificationStart(t *testing.T) {
	_, _, svc := newNotificationFixture(t)
	assert.NoError(t, svc.Start(context.Background()), "no subscriber is not an error")

	sub := &recordingSubscriber{}
	svc.subscriber = sub
	require.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, pktNats.Subject(">"), sub.subject)
	assert.Equal(t, notificationDurable, sub.durable)
	assert.NotNil(t, sub.handler)
}
