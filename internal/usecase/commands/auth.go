package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"agrispray/internal/infra"
	"agrispray/internal/infra/repository"
	"agrispray/internal/pkg/clock"
	"agrispray/internal/pkg/errs"
	"agrispray/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 5 * time.Minute

var (
	ErrInvalidPhone    = errs.New("invalid phone number")
	ErrTokenGeneration = errs.New("token generation failed")

	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

	// Namespace for deriving stable user ids from phone numbers, so a
	// returning caller lands on the same account without a lookup index.
	userNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
)

type OtpRepository interface {
	Create(ctx context.Context, challenge repository.OtpChallenge) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (repository.OtpChallenge, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
}

type UserWriteRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (repository.UserProfile, error)
	Upsert(ctx context.Context, profile repository.UserProfile) error
}

// OtpChallengeResult is returned on challenge creation. Code carries the
// plain OTP for the handler to echo in debug mode; it is never persisted.
type OtpChallengeResult struct {
	ChallengeID uuid.UUID
	ExpiresAt   time.Time
	Code        string
}

type VerifyResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	RequestOtp(ctx context.Context, phone string) (*OtpChallengeResult, error)
	VerifyOtp(ctx context.Context, challengeID uuid.UUID, code string) (*VerifyResult, error)
}

type authCommandsImpl struct {
	otpRepo    OtpRepository
	userRepo   UserWriteRepo
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(otpRepo OtpRepository, userRepo UserWriteRepo, jwtService *jwt.Service, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		otpRepo:    otpRepo,
		userRepo:   userRepo,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authCommandsImpl) RequestOtp(ctx context.Context, phone string) (*OtpChallengeResult, error) {
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	code, err := generateOtpCode()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate otp code")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash otp code")
	}

	expiresAt := a.clock.Now().Add(otpTTL)
	challengeID, err := a.otpRepo.Create(ctx, repository.OtpChallenge{
		Phone:     phone,
		CodeHash:  string(hash),
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &OtpChallengeResult{
		ChallengeID: challengeID,
		ExpiresAt:   expiresAt,
		Code:        code,
	}, nil
}

func (a *authCommandsImpl) VerifyOtp(ctx context.Context, challengeID uuid.UUID, code string) (*VerifyResult, error) {
	challenge, err := a.otpRepo.FindByID(ctx, challengeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrChallengeNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if challenge.Used || a.clock.Now().After(challenge.ExpiresAt) {
		return nil, errs.ErrChallengeExpired
	}

	if err := bcrypt.CompareHashAndPassword([]byte(challenge.CodeHash), []byte(code)); err != nil {
		return nil, errs.ErrCodeMismatch
	}

	if err := a.otpRepo.MarkUsed(ctx, challengeID); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	userID := uuid.NewSHA1(userNamespace, []byte(challenge.Phone))
	if err := a.ensureProfile(ctx, userID, challenge.Phone); err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(userID, challenge.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &VerifyResult{UserID: userID, Token: token}, nil
}

// ensureProfile creates a skeleton profile on first login and leaves an
// existing one untouched.
func (a *authCommandsImpl) ensureProfile(ctx context.Context, userID uuid.UUID, phone string) error {
	_, err := a.userRepo.FindByID(ctx, userID)
	if err == nil {
		return nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := a.userRepo.Upsert(ctx, repository.UserProfile{ID: userID, Phone: phone}); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
