package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/internal/pkg/mailer"
	"samvidhan-be/internal/repository/specification"
	"samvidhan-be/internal/repository/unitofwork"
	"samvidhan-be/pkg/events"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleUser   = "user"
	RoleLawyer = "lawyer"
	RoleAdmin  = "admin"
)

// TokenIssuer signs session tokens. Implemented by serverutils.JWTManager.
type TokenIssuer interface {
	Issue(subjectID uuid.UUID, role string) (string, error)
}

type AuthOptions struct {
	OTPTTL    time.Duration
	ExposeOTP bool
}

type IAuthService interface {
	SignupUser(ctx context.Context, req *dto.UserSignupRequest) (*dto.SignupResponse, error)
	VerifyUser(ctx context.Context, req *dto.VerifyUserOTPRequest) (*dto.AuthResponse, error)
	LoginUser(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error

	SignupLawyer(ctx context.Context, req *dto.LawyerSignupRequest) (*dto.SignupResponse, error)
	VerifyLawyer(ctx context.Context, req *dto.VerifyLawyerOTPRequest) error
	LoginLawyer(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)

	LoginAdmin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokens     TokenIssuer
	otpQueue   OTPQueue
	publisher  events.Publisher
	logger     logger.ILogger
	opts       AuthOptions
	now        func() time.Time
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	tokens TokenIssuer,
	otpQueue OTPQueue,
	publisher events.Publisher,
	log logger.ILogger,
	opts AuthOptions,
) IAuthService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if opts.OTPTTL <= 0 {
		opts.OTPTTL = 10 * time.Minute
	}
	return &authService{
		uowFactory: uowFactory,
		tokens:     tokens,
		otpQueue:   otpQueue,
		publisher:  publisher,
		logger:     log,
		opts:       opts,
		now:        time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func codesEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// pendingCode builds an OTP record that expires after the configured TTL.
func (s *authService) pendingCode(accountID uuid.UUID, accountType entity.AccountType, purpose string, channel entity.OTPChannel) (*entity.VerificationCode, error) {
	code, err := generateOTP()
	if err != nil {
		return nil, err
	}
	return &entity.VerificationCode{
		Id:          uuid.New(),
		AccountId:   accountID,
		AccountType: accountType,
		Purpose:     purpose,
		Channel:     channel,
		Code:        code,
		ExpiresAt:   s.now().Add(s.opts.OTPTTL),
	}, nil
}

func (s *authService) dispatchOTP(ctx context.Context, email, code, purpose string) {
	if s.otpQueue == nil {
		return
	}
	if err := s.otpQueue.Enqueue(ctx, OTPMessage{Email: email, Code: code, Purpose: purpose}); err != nil {
		s.logger.Error("AUTH", "Failed to queue OTP email", map[string]interface{}{"email": email, "error": err.Error()})
	}
}

func (s *authService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if err := s.publisher.Publish(ctx, events.New(eventType, data)); err != nil {
		s.logger.Warn("AUTH", "Failed to publish event", map[string]interface{}{"type": eventType, "error": err.Error()})
	}
}

// issueSignupCodes stores fresh email and phone codes for a new account.
func (s *authService) issueSignupCodes(ctx context.Context, uow unitofwork.UnitOfWork, accountID uuid.UUID, accountType entity.AccountType) (emailCode, phoneCode *entity.VerificationCode, err error) {
	emailCode, err = s.pendingCode(accountID, accountType, mailer.PurposeSignup, entity.OTPChannelEmail)
	if err != nil {
		return nil, nil, err
	}
	phoneCode, err = s.pendingCode(accountID, accountType, mailer.PurposeSignup, entity.OTPChannelPhone)
	if err != nil {
		return nil, nil, err
	}
	if err := uow.VerificationCodeRepository().Replace(ctx, emailCode); err != nil {
		return nil, nil, err
	}
	if err := uow.VerificationCodeRepository().Replace(ctx, phoneCode); err != nil {
		return nil, nil, err
	}
	return emailCode, phoneCode, nil
}

// checkSignupCodes verifies both channels. Expiry is reported before a mismatch.
func (s *authService) checkSignupCodes(ctx context.Context, uow unitofwork.UnitOfWork, accountID uuid.UUID, emailOtp, phoneOtp string) error {
	repo := uow.VerificationCodeRepository()
	emailCode, err := repo.Find(ctx, accountID, mailer.PurposeSignup, entity.OTPChannelEmail)
	if err != nil {
		return err
	}
	phoneCode, err := repo.Find(ctx, accountID, mailer.PurposeSignup, entity.OTPChannelPhone)
	if err != nil {
		return err
	}
	if emailCode == nil || phoneCode == nil {
		return newError(ErrValidation, "Invalid OTP")
	}

	now := s.now()
	if emailCode.Expired(now) || phoneCode.Expired(now) {
		return newError(ErrValidation, "OTP expired")
	}
	if !codesEqual(emailCode.Code, emailOtp) || !codesEqual(phoneCode.Code, phoneOtp) {
		return newError(ErrValidation, "Invalid OTP")
	}
	return nil
}

func (s *authService) signupResponse(emailCode, phoneCode *entity.VerificationCode) *dto.SignupResponse {
	res := &dto.SignupResponse{}
	if s.opts.ExposeOTP {
		res.EmailOtp = emailCode.Code
		res.PhoneOtp = phoneCode.Code
	}
	return res
}

func (s *authService) SignupUser(ctx context.Context, req *dto.UserSignupRequest) (*dto.SignupResponse, error) {
	email := normalizeEmail(req.Email)
	phone := strings.TrimSpace(req.Phone)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmailOrPhone{Email: email, Phone: phone})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, newError(ErrConflict, "Email or phone already registered")
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Language:     "en",
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, conflictOr(err, "Email or phone already registered")
	}
	emailCode, phoneCode, err := s.issueSignupCodes(ctx, uow, user.Id, entity.AccountTypeUser)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logSignupCodes("user", user.Id, email, emailCode, phoneCode)
	s.dispatchOTP(ctx, email, emailCode.Code, mailer.PurposeSignup)
	s.publish(ctx, events.UserRegistered, map[string]interface{}{
		"user_id":   user.Id.String(),
		"full_name": user.FullName,
	})

	res := s.signupResponse(emailCode, phoneCode)
	res.UserId = &user.Id
	return res, nil
}

func (s *authService) logSignupCodes(kind string, id uuid.UUID, email string, emailCode, phoneCode *entity.VerificationCode) {
	details := map[string]interface{}{"account_type": kind, "account_id": id.String(), "email": email}
	if s.opts.ExposeOTP {
		details["email_otp"] = emailCode.Code
		details["phone_otp"] = phoneCode.Code
	}
	s.logger.Info("AUTH", "Signup OTPs issued", details)
}

func (s *authService) VerifyUser(ctx context.Context, req *dto.VerifyUserOTPRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, newError(ErrNotFound, "User not found")
	}

	if err := s.checkSignupCodes(ctx, uow, user.Id, req.EmailOtp, req.PhoneOtp); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().MarkVerified(ctx, user.Id); err != nil {
		return nil, err
	}
	if err := uow.VerificationCodeRepository().DeleteForAccount(ctx, user.Id, mailer.PurposeSignup); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	user.IsVerified, user.EmailVerified, user.PhoneVerified = true, true, true
	token, err := s.tokens.Issue(user.Id, RoleUser)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: toUserSummary(user, s.now())}, nil
}

func (s *authService) LoginUser(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: normalizeEmail(req.Email)})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, newError(ErrNotFound, "User not found")
	}
	if !checkPassword(user.PasswordHash, req.Password) {
		return nil, newError(ErrInvalidCredentials, "Invalid credentials")
	}
	if !user.IsVerified {
		return nil, newError(ErrValidation, "Please verify your account first")
	}

	now := s.now()
	if err := uow.UserRepository().TouchLastLogin(ctx, user.Id, now); err != nil {
		s.logger.Warn("AUTH", "Failed to update last login", map[string]interface{}{"user_id": user.Id.String(), "error": err.Error()})
	}

	token, err := s.tokens.Issue(user.Id, RoleUser)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: toUserSummary(user, now)}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: normalizeEmail(req.Email)})
	if err != nil {
		return err
	}
	if user == nil {
		return newError(ErrNotFound, "User not found")
	}

	code, err := s.pendingCode(user.Id, entity.AccountTypeUser, mailer.PurposePasswordReset, entity.OTPChannelEmail)
	if err != nil {
		return err
	}
	if err := uow.VerificationCodeRepository().Replace(ctx, code); err != nil {
		return err
	}

	details := map[string]interface{}{"user_id": user.Id.String()}
	if s.opts.ExposeOTP {
		details["otp"] = code.Code
	}
	s.logger.Info("AUTH", "Password reset OTP issued", details)
	s.dispatchOTP(ctx, user.Email, code.Code, mailer.PurposePasswordReset)
	return nil
}

// consumeEmailCode checks a single-channel code and deletes it on success.
func consumeEmailCode(ctx context.Context, uow unitofwork.UnitOfWork, accountID uuid.UUID, purpose, otp string, now time.Time) error {
	code, err := uow.VerificationCodeRepository().Find(ctx, accountID, purpose, entity.OTPChannelEmail)
	if err != nil {
		return err
	}
	if code == nil || code.Expired(now) || !codesEqual(code.Code, otp) {
		return newError(ErrValidation, "Invalid or expired OTP")
	}
	return uow.VerificationCodeRepository().DeleteForAccount(ctx, accountID, purpose)
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: normalizeEmail(req.Email)})
	if err != nil {
		return err
	}
	if user == nil {
		return newError(ErrNotFound, "User not found")
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := consumeEmailCode(ctx, uow, user.Id, mailer.PurposePasswordReset, req.Otp, s.now()); err != nil {
		return err
	}
	if err := uow.UserRepository().UpdatePassword(ctx, user.Id, hash); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *authService) SignupLawyer(ctx context.Context, req *dto.LawyerSignupRequest) (*dto.SignupResponse, error) {
	const duplicate = "Email, phone or bar council number already registered"

	email := normalizeEmail(req.Email)
	phone := strings.TrimSpace(req.Phone)
	barNumber := strings.TrimSpace(req.BarCouncilNumber)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.LawyerRepository().FindOne(ctx, specification.ByEmailOrPhone{Email: email, Phone: phone})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		existing, err = uow.LawyerRepository().FindOne(ctx, specification.ByBarCouncilNumber{Number: barNumber})
		if err != nil {
			return nil, err
		}
	}
	if existing != nil {
		return nil, newError(ErrConflict, duplicate)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	lawyer := &entity.Lawyer{
		Id:                uuid.New(),
		FullName:          strings.TrimSpace(req.FullName),
		Email:             email,
		Phone:             phone,
		PasswordHash:      hash,
		BarCouncilNumber:  barNumber,
		AadhaarNumber:     strings.TrimSpace(req.AadhaarNumber),
		Specializations:   []string(req.Specialization),
		Experience:        req.Experience,
		CourtJurisdiction: req.CourtJurisdiction,
		Address:           req.Address,
		Bio:               req.Bio,
		Available:         true,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.LawyerRepository().Create(ctx, lawyer); err != nil {
		return nil, conflictOr(err, duplicate)
	}
	emailCode, phoneCode, err := s.issueSignupCodes(ctx, uow, lawyer.Id, entity.AccountTypeLawyer)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logSignupCodes("lawyer", lawyer.Id, email, emailCode, phoneCode)
	s.dispatchOTP(ctx, email, emailCode.Code, mailer.PurposeSignup)

	res := s.signupResponse(emailCode, phoneCode)
	res.LawyerId = &lawyer.Id
	return res, nil
}

func (s *authService) VerifyLawyer(ctx context.Context, req *dto.VerifyLawyerOTPRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	lawyer, err := uow.LawyerRepository().FindOne(ctx, specification.ByID{ID: req.LawyerId})
	if err != nil {
		return err
	}
	if lawyer == nil {
		return newError(ErrNotFound, "Lawyer not found")
	}

	if err := s.checkSignupCodes(ctx, uow, lawyer.Id, req.EmailOtp, req.PhoneOtp); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.LawyerRepository().MarkVerified(ctx, lawyer.Id); err != nil {
		return err
	}
	if err := uow.VerificationCodeRepository().DeleteForAccount(ctx, lawyer.Id, mailer.PurposeSignup); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	// admins only hear about lawyers once there is something to approve
	s.publish(ctx, events.LawyerRegistered, map[string]interface{}{
		"lawyer_id":          lawyer.Id.String(),
		"full_name":          lawyer.FullName,
		"bar_council_number": lawyer.BarCouncilNumber,
	})
	return nil
}

func (s *authService) LoginLawyer(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	lawyer, err := uow.LawyerRepository().FindOne(ctx, specification.ByEmail{Email: normalizeEmail(req.Email)})
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, newError(ErrNotFound, "Lawyer not found")
	}
	if !checkPassword(lawyer.PasswordHash, req.Password) {
		return nil, newError(ErrInvalidCredentials, "Invalid credentials")
	}
	if !lawyer.IsVerified {
		return nil, newError(ErrValidation, "Please verify your account first")
	}
	if !lawyer.IsApproved {
		return nil, newError(ErrValidation, "Account pending admin approval")
	}

	if err := uow.LawyerRepository().TouchLastLogin(ctx, lawyer.Id, s.now()); err != nil {
		s.logger.Warn("AUTH", "Failed to update last login", map[string]interface{}{"lawyer_id": lawyer.Id.String(), "error": err.Error()})
	}

	token, err := s.tokens.Issue(lawyer.Id, RoleLawyer)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, Lawyer: toLawyerSummary(lawyer)}, nil
}

func (s *authService) LoginAdmin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByUsername{Username: strings.TrimSpace(req.Username)})
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, newError(ErrNotFound, "Admin not found")
	}
	if !checkPassword(admin.PasswordHash, req.Password) {
		return nil, newError(ErrInvalidCredentials, "Invalid credentials")
	}

	if err := uow.AdminRepository().TouchLastLogin(ctx, admin.Id, s.now()); err != nil {
		s.logger.Warn("AUTH", "Failed to update last login", map[string]interface{}{"admin_id": admin.Id.String(), "error": err.Error()})
	}

	token, err := s.tokens.Issue(admin.Id, RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token}, nil
}
