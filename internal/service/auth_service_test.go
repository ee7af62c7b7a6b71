package service

import (
	"context"
	"testing"
	"time"

	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/internal/pkg/mailer"
	"samvidhan-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	store     *memStore
	queue     *recordingQueue
	publisher *recordingPublisher
	svc       *authService
}

func newAuthFixture(t *testing.T, exposeOTP bool) *authFixture {
	t.Helper()
	store := newMemStore()
	queue := &recordingQueue{}
	pub := &recordingPublisher{}
	svc := NewAuthService(store, staticTokens{}, queue, pub, logger.NewNopLogger(), AuthOptions{
		OTPTTL:    5 * time.Minute,
		ExposeOTP: exposeOTP,
	}).(*authService)
	return &authFixture{store: store, queue: queue, publisher: pub, svc: svc}
}

func (f *authFixture) signupUser(t *testing.T, email, phone string) uuid.UUID {
	t.Helper()
	res, err := f.svc.SignupUser(context.Background(), &dto.UserSignupRequest{
		FullName: "Ravi Kumar",
		Email:    email,
		Phone:    phone,
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, res.UserId)
	return *res.UserId
}

func (f *authFixture) verifyUser(t *testing.T, id uuid.UUID) {
	t.Helper()
	emailCode := f.store.codeFor(id, mailer.PurposeSignup, entity.OTPChannelEmail)
	phoneCode := f.store.codeFor(id, mailer.PurposeSignup, entity.OTPChannelPhone)
	require.NotNil(t, emailCode)
	require.NotNil(t, phoneCode)

	_, err := f.svc.VerifyUser(context.Background(), &dto.VerifyUserOTPRequest{
		UserId:   id,
		EmailOtp: emailCode.Code,
		PhoneOtp: phoneCode.Code,
	})
	require.NoError(t, err)
}

func TestSignupUser_IssuesCodesAndQueuesMail(t *testing.T) {
	f := newAuthFixture(t, false)

	id := f.signupUser(t, " Ravi@Example.in ", "9000000002")

	stored := f.store.users[id]
	require.NotNil(t, stored)
	assert.Equal(t, "ravi@example.in", stored.Email)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.False(t, stored.IsVerified)

	emailCode := f.store.codeFor(id, mailer.PurposeSignup, entity.OTPChannelEmail)
	phoneCode := f.store.codeFor(id, mailer.PurposeSignup, entity.OTPChannelPhone)
	require.NotNil(t, emailCode)
	require.NotNil(t, phoneCode)
	assert.Len(t, emailCode.Code, 6)
	assert.Len(t, phoneCode.Code, 6)

	require.Len(t, f.queue.msgs, 1)
	assert.Equal(t, OTPMessage{Email: "ravi@example.in", Code: emailCode.Code, Purpose: mailer.PurposeSignup}, f.queue.msgs[0])
	assert.Len(t, f.publisher.ofType(events.UserRegistered), 1)
}

func TestSignupUser_ExposeOTP(t *testing.T) {
	for _, expose := range []bool{true, false} {
		f := newAuthFixture(t, expose)
		res, err := f.svc.SignupUser(context.Background(), &dto.UserSignupRequest{
			FullName: "Meera", Email: "meera@example.in", Phone: "9000000003", Password: "secret123",
		})
		require.NoError(t, err)

		if expose {
			assert.Equal(t, f.store.codeFor(*res.UserId, mailer.PurposeSignup, entity.OTPChannelEmail).Code, res.EmailOtp)
			assert.NotEmpty(t, res.PhoneOtp)
		} else {
			assert.Empty(t, res.EmailOtp)
			assert.Empty(t, res.PhoneOtp)
		}
	}
}

func TestSignupUser_Duplicate(t *testing.T) {
	tests := []struct {
		name  string
		email string
		phone string
	}{
		{"same email", "RAVI@example.in", "9111111111"},
		{"same phone", "other@example.in", "9000000002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t, false)
			f.signupUser(t, "ravi@example.in", "9000000002")

			_, err := f.svc.SignupUser(context.Background(), &dto.UserSignupRequest{
				FullName: "Someone", Email: tt.email, Phone: tt.phone, Password: "secret123",
			})
			assert.ErrorIs(t, err, ErrConflict)
			assert.Len(t, f.store.users, 1)
		})
	}
}

func TestVerifyUser(t *testing.T) {
	f := newAuthFixture(t, false)
	id := f.signupUser(t, "ravi@example.in", "9000000002")
	emailCode := f.store.codeFor(id, mailer.PurposeSignup, entity.OTPChannelEmail)
	phoneCode := f.store.codeFor(id, mailer.PurposeSignup, entity.OTPChannelPhone)

	_, err := f.svc.VerifyUser(context.Background(), &dto.VerifyUserOTPRequest{UserId: id, EmailOtp: emailCode.Code, PhoneOtp: "000000x"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, f.store.users[id].IsVerified)

	_, err = f.svc.VerifyUser(context.Background(), &dto.VerifyUserOTPRequest{UserId: uuid.New(), EmailOtp: "123456", PhoneOtp: "123456"})
	assert.ErrorIs(t, err, ErrNotFound)

	res, err := f.svc.VerifyUser(context.Background(), &dto.VerifyUserOTPRequest{UserId: id, EmailOtp: emailCode.Code, PhoneOtp: phoneCode.Code})
	require.NoError(t, err)
	assert.Equal(t, "user:"+id.String(), res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, id, res.User.Id)

	assert.True(t, f.store.users[id].IsVerified)
	assert.Nil(t, f.store.codeFor(id, mailer.PurposeSignup, entity.OTPChannelEmail))
	assert.Nil(t, f.store.codeFor(id, mailer.PurposeSignup, entity.OTPChannelPhone))
}

func TestVerifyUser_ExpiredCode(t *testing.T) {
	f := newAuthFixture(t, false)
	id := f.signupUser(t, "ravi@example.in", "9000000002")
	emailCode := f.store.codeFor(id, mailer.PurposeSignup, entity.OTPChannelEmail)
	phoneCode := f.store.codeFor(id, mailer.PurposeSignup, entity.OTPChannelPhone)

	f.svc.now = func() time.Time { return time.Now().Add(time.Hour) }

	_, err := f.svc.VerifyUser(context.Background(), &dto.VerifyUserOTPRequest{UserId: id, EmailOtp: emailCode.Code, PhoneOtp: phoneCode.Code})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "OTP expired", err.Error())
}

func TestLoginUser(t *testing.T) {
	f := newAuthFixture(t, false)
	id := f.signupUser(t, "ravi@example.in", "9000000002")

	_, err := f.svc.LoginUser(context.Background(), &dto.LoginRequest{Email: "ravi@example.in", Password: "secret123"})
	assert.ErrorIs(t, err, ErrValidation, "unverified accounts cannot log in")

	f.verifyUser(t, id)

	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"wrong password", "ravi@example.in", "nope", ErrInvalidCredentials},
		{"unknown email", "ghost@example.in", "secret123", ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.LoginUser(context.Background(), &dto.LoginRequest{Email: tt.email, Password: tt.password})
			assert.ErrorIs(t, err, tt.want)
		})
	}

	res, err := f.svc.LoginUser(context.Background(), &dto.LoginRequest{Email: "RAVI@example.in", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "user:"+id.String(), res.Token)
	assert.NotNil(t, f.store.users[id].LastLogin)
}

func TestPasswordReset(t *testing.T) {
	f := newAuthFixture(t, false)
	id := f.signupUser(t, "ravi@example.in", "9000000002")
	f.verifyUser(t, id)

	err := f.svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{Email: "ghost@example.in"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{Email: "ravi@example.in"}))
	code := f.store.codeFor(id, mailer.PurposePasswordReset, entity.OTPChannelEmail)
	require.NotNil(t, code)
	assert.Equal(t, mailer.PurposePasswordReset, f.queue.msgs[len(f.queue.msgs)-1].Purpose)

	err = f.svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{Email: "ravi@example.in", Otp: "999999x", NewPassword: "changed123"})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, f.svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{Email: "ravi@example.in", Otp: code.Code, NewPassword: "changed123"}))
	assert.Nil(t, f.store.codeFor(id, mailer.PurposePasswordReset, entity.OTPChannelEmail))

	_, err = f.svc.LoginUser(context.Background(), &dto.LoginRequest{Email: "ravi@example.in", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.svc.LoginUser(context.Background(), &dto.LoginRequest{Email: "ravi@example.in", Password: "changed123"})
	assert.NoError(t, err)

	err = f.svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{Email: "ravi@example.in", Otp: code.Code, NewPassword: "again1234"})
	assert.ErrorIs(t, err, ErrValidation, "codes are single use")
}

func lawyerSignup(email, phone, bar string) *dto.LawyerSignupRequest {
	return &dto.LawyerSignupRequest{
		FullName:         "Adv. Kavya Iyer",
		Email:            email,
		Phone:            phone,
		Password:         "secret123",
		BarCouncilNumber: bar,
		AadhaarNumber:    "123412341234",
		Specialization:   dto.Specializations{"Family Law", "Property Law"},
		Experience:       8,
	}
}

func TestLawyerLifecycle(t *testing.T) {
	f := newAuthFixture(t, false)
	ctx := context.Background()

	res, err := f.svc.SignupLawyer(ctx, lawyerSignup("kavya@example.in", "9000000010", "KAR/123/2015"))
	require.NoError(t, err)
	require.NotNil(t, res.LawyerId)
	id := *res.LawyerId
	assert.Empty(t, f.publisher.ofType(events.LawyerRegistered))

	_, err = f.svc.SignupLawyer(ctx, lawyerSignup("other@example.in", "9000000011", "KAR/123/2015"))
	assert.ErrorIs(t, err, ErrConflict)

	emailCode := f.store.codeFor(id, mailer.PurposeSignup, entity.OTPChannelEmail)
	phoneCode := f.store.codeFor(id, mailer.PurposeSignup, entity.OTPChannelPhone)
	require.NoError(t, f.svc.VerifyLawyer(ctx, &dto.VerifyLawyerOTPRequest{LawyerId: id, EmailOtp: emailCode.Code, PhoneOtp: phoneCode.Code}))

	registered := f.publisher.ofType(events.LawyerRegistered)
	require.Len(t, registered, 1)
	assert.Equal(t, id.String(), events.StringField(registered[0], "lawyer_id"))

	_, err = f.svc.LoginLawyer(ctx, &dto.LoginRequest{Email: "kavya@example.in", Password: "secret123"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Account pending admin approval", err.Error())

	f.store.lawyers[id].IsApproved = true
	auth, err := f.svc.LoginLawyer(ctx, &dto.LoginRequest{Email: "kavya@example.in", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "lawyer:"+id.String(), auth.Token)
	require.NotNil(t, auth.Lawyer)
	assert.Equal(t, []string{"Family Law", "Property Law"}, auth.Lawyer.Specialization)
}

func TestLoginAdmin(t *testing.T) {
	f := newAuthFixture(t, false)
	hash, err := hashPassword("admin123")
	require.NoError(t, err)
	admin := &entity.Admin{Id: uuid.New(), Username: "admin", PasswordHash: hash}
	f.store.admins[admin.Id] = admin

	_, err = f.svc.LoginAdmin(context.Background(), &dto.AdminLoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.LoginAdmin(context.Background(), &dto.AdminLoginRequest{Username: "root", Password: "admin123"})
	assert.ErrorIs(t, err, ErrNotFound)

	res, err := f.svc.LoginAdmin(context.Background(), &dto.AdminLoginRequest{Username: " admin ", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin:"+admin.Id.String(), res.Token)
	assert.Nil(t, res.User)
	assert.NotNil(t, f.store.admins[admin.Id].LastLogin)
}
