package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/model"
	"samvidhan-be/internal/repository/contract"
	"samvidhan-be/internal/repository/implementation"
	"samvidhan-be/internal/repository/specification"
	"samvidhan-be/internal/repository/unitofwork"
	"samvidhan-be/pkg/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errStoreDown = errors.New("store down")

// memStore backs every fake repository. Specifications are interpreted for the
// handful of types the services use; ordering and paging are ignored.
type memStore struct {
	mu sync.Mutex

	users         map[uuid.UUID]*entity.User
	lawyers       map[uuid.UUID]*entity.Lawyer
	admins        map[uuid.UUID]*entity.Admin
	codes         []*entity.VerificationCode
	consultations []*entity.Consultation
	history       []*entity.ChatHistoryEntry
	conversations []*entity.Conversation
	messages      []*entity.ConversationMessage
	ads           []*entity.Ad
	payments      map[uuid.UUID]*entity.Payment

	notifTypes    map[string]*model.NotificationType
	notifications []model.Notification

	failConsultationCreate bool
	failHistoryAppend      bool

	// runs once, just before the next payment status update
	beforePaymentUpdate func()

	begins, commits int
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[uuid.UUID]*entity.User{},
		lawyers:    map[uuid.UUID]*entity.Lawyer{},
		admins:     map[uuid.UUID]*entity.Admin{},
		payments:   map[uuid.UUID]*entity.Payment{},
		notifTypes: map[string]*model.NotificationType{},
	}
}

func (s *memStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUoW{s: s}
}

type memUoW struct {
	s *memStore
}

func (u *memUoW) Begin(ctx context.Context) error {
	u.s.mu.Lock()
	u.s.begins++
	u.s.mu.Unlock()
	return nil
}

func (u *memUoW) Commit() error {
	u.s.mu.Lock()
	u.s.commits++
	u.s.mu.Unlock()
	return nil
}

func (u *memUoW) Rollback() error { return nil }

func (u *memUoW) UserRepository() contract.UserRepository     { return memUsers{u.s} }
func (u *memUoW) LawyerRepository() contract.LawyerRepository { return memLawyers{u.s} }
func (u *memUoW) AdminRepository() contract.AdminRepository   { return memAdmins{u.s} }
func (u *memUoW) VerificationCodeRepository() contract.VerificationCodeRepository {
	return memCodes{u.s}
}
func (u *memUoW) ConsultationRepository() contract.ConsultationRepository {
	return memConsultations{u.s}
}
func (u *memUoW) ChatHistoryRepository() contract.ChatHistoryRepository { return memHistory{u.s} }
func (u *memUoW) ConversationRepository() contract.ConversationRepository {
	return memConversations{u.s}
}
func (u *memUoW) AdRepository() contract.AdRepository         { return memAds{u.s} }
func (u *memUoW) PaymentRepository() contract.PaymentRepository { return memPayments{u.s} }
func (u *memUoW) NotificationRepository() contract.NotificationRepository {
	return memNotifications{u.s}
}

func sameEmail(a, b string) bool { return strings.EqualFold(a, b) }

func containsFold(list []string, v string) bool {
	for _, x := range list {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}

// users

type memUsers struct{ s *memStore }

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if u.Id != sp.ID {
				return false
			}
		case specification.ByEmail:
			if !sameEmail(u.Email, sp.Email) {
				return false
			}
		case specification.ByEmailOrPhone:
			if !sameEmail(u.Email, sp.Email) && u.Phone != sp.Phone {
				return false
			}
		case specification.DeletionRequested:
			if !u.DeletionRequested {
				return false
			}
		}
	}
	return true
}

func (r memUsers) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if sameEmail(u.Email, user.Email) || u.Phone == user.Phone {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	user.CreatedAt = time.Now()
	cp := *user
	r.s.users[user.Id] = &cp
	return nil
}

func (r memUsers) Update(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *user
	r.s.users[user.Id] = &cp
	return nil
}

func (r memUsers) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

func (r memUsers) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if matchUser(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memUsers) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if matchUser(u, specs) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r memUsers) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r memUsers) mutate(id uuid.UUID, fn func(u *entity.User)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		fn(u)
	}
	return nil
}

func (r memUsers) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return r.mutate(id, func(u *entity.User) {
		u.EmailVerified, u.PhoneVerified, u.IsVerified = true, true, true
	})
}

func (r memUsers) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.mutate(id, func(u *entity.User) { u.PasswordHash = hash })
}

func (r memUsers) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.mutate(id, func(u *entity.User) { u.LastLogin = &at })
}

func (r memUsers) RequestDeletion(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.mutate(id, func(u *entity.User) { u.DeletionRequested, u.DeletionRequestedAt = true, &at })
}

func (r memUsers) GrantPremium(ctx context.Context, id uuid.UUID, until time.Time) error {
	return r.mutate(id, func(u *entity.User) { u.IsPremium, u.PremiumExpiresAt = true, &until })
}

func (r memUsers) RemoveAds(ctx context.Context, id uuid.UUID) error {
	return r.mutate(id, func(u *entity.User) { u.AdsRemoved = true })
}

// lawyers

type memLawyers struct{ s *memStore }

func matchLawyer(l *entity.Lawyer, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if l.Id != sp.ID {
				return false
			}
		case specification.ByEmail:
			if !sameEmail(l.Email, sp.Email) {
				return false
			}
		case specification.ByEmailOrPhone:
			if !sameEmail(l.Email, sp.Email) && l.Phone != sp.Phone {
				return false
			}
		case specification.ByBarCouncilNumber:
			if l.BarCouncilNumber != sp.Number {
				return false
			}
		case specification.ApprovedLawyers:
			if !l.IsVerified || !l.IsApproved {
				return false
			}
		case specification.PendingLawyers:
			if !l.IsVerified || l.IsApproved {
				return false
			}
		case specification.DeletionRequested:
			if !l.DeletionRequested {
				return false
			}
		case specification.WithSpecialization:
			if sp.Specialization != "" && !containsFold(l.Specializations, sp.Specialization) {
				return false
			}
		}
	}
	return true
}

func (r memLawyers) Create(ctx context.Context, lawyer *entity.Lawyer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if lawyer.Id == uuid.Nil {
		lawyer.Id = uuid.New()
	}
	cp := *lawyer
	r.s.lawyers[lawyer.Id] = &cp
	return nil
}

func (r memLawyers) Update(ctx context.Context, lawyer *entity.Lawyer) error {
	return r.Create(ctx, lawyer)
}

func (r memLawyers) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.lawyers, id)
	return nil
}

func (r memLawyers) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lawyer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.lawyers {
		if matchLawyer(l, specs) {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memLawyers) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lawyer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Lawyer
	for _, l := range r.s.lawyers {
		if matchLawyer(l, specs) {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r memLawyers) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r memLawyers) mutate(id uuid.UUID, fn func(l *entity.Lawyer)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l, ok := r.s.lawyers[id]; ok {
		fn(l)
	}
	return nil
}

func (r memLawyers) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return r.mutate(id, func(l *entity.Lawyer) {
		l.EmailVerified, l.PhoneVerified, l.IsVerified = true, true, true
	})
}

func (r memLawyers) Approve(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.mutate(id, func(l *entity.Lawyer) { l.IsApproved, l.ApprovedAt = true, &at })
}

func (r memLawyers) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.mutate(id, func(l *entity.Lawyer) { l.LastLogin = &at })
}

func (r memLawyers) RequestDeletion(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.mutate(id, func(l *entity.Lawyer) { l.DeletionRequested, l.DeletionRequestedAt = true, &at })
}

// admins

type memAdmins struct{ s *memStore }

func (r memAdmins) Create(ctx context.Context, admin *entity.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if admin.Id == uuid.Nil {
		admin.Id = uuid.New()
	}
	cp := *admin
	r.s.admins[admin.Id] = &cp
	return nil
}

func (r memAdmins) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.admins {
		ok := true
		for _, spec := range specs {
			if sp, isName := spec.(specification.ByUsername); isName && sp.Username != a.Username {
				ok = false
			}
		}
		if ok {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memAdmins) FindAll(ctx context.Context) ([]*entity.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Admin
	for _, a := range r.s.admins {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r memAdmins) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a, ok := r.s.admins[id]; ok {
		a.LastLogin = &at
	}
	return nil
}

// verification codes

type memCodes struct{ s *memStore }

func (r memCodes) Replace(ctx context.Context, code *entity.VerificationCode) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.codes[:0]
	for _, c := range r.s.codes {
		if c.AccountId == code.AccountId && c.Purpose == code.Purpose && c.Channel == code.Channel {
			continue
		}
		kept = append(kept, c)
	}
	cp := *code
	if cp.Id == uuid.Nil {
		cp.Id = uuid.New()
	}
	r.s.codes = append(kept, &cp)
	return nil
}

func (r memCodes) Find(ctx context.Context, accountID uuid.UUID, purpose string, channel entity.OTPChannel) (*entity.VerificationCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.codes {
		if c.AccountId == accountID && c.Purpose == purpose && c.Channel == channel {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memCodes) DeleteForAccount(ctx context.Context, accountID uuid.UUID, purpose string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.codes[:0]
	for _, c := range r.s.codes {
		if c.AccountId == accountID && c.Purpose == purpose {
			continue
		}
		kept = append(kept, c)
	}
	r.s.codes = kept
	return nil
}

// codeFor is a test helper returning the stored code for a channel.
func (s *memStore) codeFor(accountID uuid.UUID, purpose string, channel entity.OTPChannel) *entity.VerificationCode {
	c, _ := memCodes{s}.Find(context.Background(), accountID, purpose, channel)
	return c
}

// consultations and history

type memConsultations struct{ s *memStore }

func (r memConsultations) Create(ctx context.Context, c *entity.Consultation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failConsultationCreate {
		return errStoreDown
	}
	cp := *c
	cp.CreatedAt = time.Now()
	r.s.consultations = append(r.s.consultations, &cp)
	return nil
}

func (r memConsultations) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consultation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]*entity.Consultation(nil), r.s.consultations...), nil
}

func (r memConsultations) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.consultations)), nil
}

func (r memConsultations) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.consultations[:0]
	for _, c := range r.s.consultations {
		if c.UserId != userID {
			kept = append(kept, c)
		}
	}
	r.s.consultations = kept
	return nil
}

type memHistory struct{ s *memStore }

func (r memHistory) Append(ctx context.Context, e *entity.ChatHistoryEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failHistoryAppend {
		return errStoreDown
	}
	cp := *e
	cp.CreatedAt = time.Now()
	r.s.history = append(r.s.history, &cp)
	return nil
}

func (r memHistory) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ChatHistoryEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ChatHistoryEntry
	for _, e := range r.s.history {
		if e.UserId == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r memHistory) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.history[:0]
	for _, e := range r.s.history {
		if e.UserId != userID {
			kept = append(kept, e)
		}
	}
	r.s.history = kept
	return nil
}

// conversations

type memConversations struct{ s *memStore }

func (r memConversations) FindOrCreate(ctx context.Context, userID, lawyerID uuid.UUID) (*entity.Conversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.conversations {
		if c.UserId == userID && c.LawyerId == lawyerID {
			cp := *c
			return &cp, nil
		}
	}
	c := &entity.Conversation{Id: uuid.New(), UserId: userID, LawyerId: lawyerID, CreatedAt: time.Now()}
	r.s.conversations = append(r.s.conversations, c)
	cp := *c
	return &cp, nil
}

func (r memConversations) AddMessage(ctx context.Context, msg *entity.ConversationMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if msg.Id == uuid.Nil {
		msg.Id = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	cp := *msg
	r.s.messages = append(r.s.messages, &cp)
	for _, c := range r.s.conversations {
		if c.Id == msg.ConversationId {
			c.LastMessageAt = msg.CreatedAt
		}
	}
	return nil
}

func (r memConversations) list(match func(c *entity.Conversation) bool) []*entity.Conversation {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Conversation
	for _, c := range r.s.conversations {
		if match(c) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastMessageAt.After(out[j].LastMessageAt) })
	return out
}

func (r memConversations) ListByLawyer(ctx context.Context, lawyerID uuid.UUID) ([]*entity.Conversation, error) {
	return r.list(func(c *entity.Conversation) bool { return c.LawyerId == lawyerID }), nil
}

func (r memConversations) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	return r.list(func(c *entity.Conversation) bool { return c.UserId == userID }), nil
}

func (r memConversations) Messages(ctx context.Context, conversationID uuid.UUID, limit int) ([]*entity.ConversationMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ConversationMessage
	for _, m := range r.s.messages {
		if m.ConversationId == conversationID {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (r memConversations) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.delete(func(c *entity.Conversation) bool { return c.UserId == userID })
}

func (r memConversations) DeleteByLawyer(ctx context.Context, lawyerID uuid.UUID) error {
	return r.delete(func(c *entity.Conversation) bool { return c.LawyerId == lawyerID })
}

func (r memConversations) delete(match func(c *entity.Conversation) bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	gone := map[uuid.UUID]bool{}
	kept := r.s.conversations[:0]
	for _, c := range r.s.conversations {
		if match(c) {
			gone[c.Id] = true
			continue
		}
		kept = append(kept, c)
	}
	r.s.conversations = kept
	msgs := r.s.messages[:0]
	for _, m := range r.s.messages {
		if !gone[m.ConversationId] {
			msgs = append(msgs, m)
		}
	}
	r.s.messages = msgs
	return nil
}

// ads and payments

type memAds struct{ s *memStore }

func (r memAds) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ad, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Ad
	for _, a := range r.s.ads {
		if a.IsActive {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r memAds) Count(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.ads)), nil
}

func (r memAds) Create(ctx context.Context, ad *entity.Ad) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *ad
	r.s.ads = append(r.s.ads, &cp)
	return nil
}

func (r memAds) AddImpressions(ctx context.Context, ids []uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range ids {
		for _, a := range r.s.ads {
			if a.Id == id {
				a.Impressions++
			}
		}
	}
	return nil
}

type memPayments struct{ s *memStore }

func (r memPayments) Create(ctx context.Context, p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.payments[p.Id] = &cp
	return nil
}

func (r memPayments) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r memPayments) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Payment
	for _, p := range r.s.payments {
		ok := true
		for _, spec := range specs {
			switch sp := spec.(type) {
			case specification.ByID:
				ok = ok && p.Id == sp.ID
			case specification.FilterBy:
				if sp.Field == "transaction_id" {
					ok = ok && p.TransactionId == sp.Value
				}
			}
		}
		if ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r memPayments) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, paidAt *time.Time) (bool, error) {
	r.s.mu.Lock()
	hook := r.s.beforePaymentUpdate
	r.s.beforePaymentUpdate = nil
	r.s.mu.Unlock()
	if hook != nil {
		hook()
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.payments[id]
	if !ok || p.Status == entity.PaymentStatusCompleted || p.Status == status {
		return false, nil
	}
	p.Status = status
	p.PaidAt = paidAt
	return true, nil
}

func (r memPayments) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.payments {
		if p.UserId == userID {
			delete(r.s.payments, id)
		}
	}
	return nil
}

// notifications

type memNotifications struct{ s *memStore }

func (r memNotifications) CreateNotification(ctx context.Context, n *model.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.notifications = append(r.s.notifications, *n)
	return nil
}

func (r memNotifications) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Notification
	for _, n := range r.s.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (r memNotifications) GetUnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, x := range r.s.notifications {
		if x.RecipientID == recipientID && !x.IsRead {
			n++
		}
	}
	return n, nil
}

func (r memNotifications) MarkAsRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.notifications {
		n := &r.s.notifications[i]
		if n.ID == notificationID && n.RecipientID == recipientID {
			n.IsRead = true
			return nil
		}
	}
	return implementation.ErrNotificationNotFound
}

func (r memNotifications) MarkAllAsRead(ctx context.Context, recipientID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.notifications {
		if r.s.notifications[i].RecipientID == recipientID {
			r.s.notifications[i].IsRead = true
		}
	}
	return nil
}

func (r memNotifications) DeleteByRecipient(ctx context.Context, recipientID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.notifications[:0]
	for _, n := range r.s.notifications {
		if n.RecipientID != recipientID {
			kept = append(kept, n)
		}
	}
	r.s.notifications = kept
	return nil
}

func (r memNotifications) GetNotificationTypeByCode(ctx context.Context, code string) (*model.NotificationType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.notifTypes[code]
	if !ok || !t.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (r memNotifications) GetAdminIDs(ctx context.Context) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []uuid.UUID
	for id := range r.s.admins {
		ids = append(ids, id)
	}
	return ids, nil
}

func notificationFor(recipientID uuid.UUID) model.Notification {
	return model.Notification{ID: uuid.New(), RecipientID: recipientID, RecipientRole: RoleUser, TypeCode: events.MessageReceived, Title: "t", Message: "m"}
}

// collaborators

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) ofType(t string) []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.Event
	for _, e := range p.events {
		if e.EventType() == t {
			out = append(out, e)
		}
	}
	return out
}

type pushed struct {
	recipient uuid.UUID
	frameType string
	data      interface{}
}

type recordingDelivery struct {
	mu     sync.Mutex
	frames []pushed
}

func (d *recordingDelivery) Push(recipientID uuid.UUID, frameType string, data interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames = append(d.frames, pushed{recipientID, frameType, data})
}

type recordingQueue struct {
	mu   sync.Mutex
	msgs []OTPMessage
}

func (q *recordingQueue) Enqueue(ctx context.Context, msg OTPMessage) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.msgs = append(q.msgs, msg)
	return nil
}

type staticTokens struct{}

func (staticTokens) Issue(subjectID uuid.UUID, role string) (string, error) {
	return role + ":" + subjectID.String(), nil
}
