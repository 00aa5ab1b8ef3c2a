package auth

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vendorconnect/api/internal/application/dto"
	"github.com/vendorconnect/api/internal/domain"
	"github.com/vendorconnect/api/internal/domain/entity"
	"github.com/vendorconnect/api/internal/domain/repository"
	"github.com/vendorconnect/api/pkg/jwt"
)

// State of the mock verification flow.
type State int

const (
	StateUnverified State = iota
	StateCodeSent
	StateVerified
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Config flow settings. The delays simulate SMS latency and are not
// cancellable; tests set them to zero.
type Config struct {
	JWT         JWTConfig
	SendDelay   time.Duration
	VerifyDelay time.Duration
}

// AuthUseCase drives the mock OTP login: Unverified → CodeSent → Verified.
// There is deliberately no retry limit, no pending-code expiry and no
// resend cooldown; the flow is a demo stand-in for a real SMS gateway.
// A single pending verification exists at a time (single-actor model).
type AuthUseCase struct {
	sessions repository.SessionRepository
	cfg      Config

	mu       sync.Mutex
	state    State
	phone    string
	role     string
	codeHash []byte // bcrypt of the pending 6-digit code
}

// NewAuthUseCase builds the flow in the Unverified state.
func NewAuthUseCase(sessions repository.SessionRepository, cfg Config) *AuthUseCase {
	return &AuthUseCase{sessions: sessions, cfg: cfg}
}

// State returns the current flow state.
func (uc *AuthUseCase) State() State {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// SendCode validates the candidate number (exactly 10 digits after
// stripping non-digits), generates a uniform 6-digit code and transitions
// to CodeSent after the simulated latency. The plaintext code is returned
// once for display; only its bcrypt hash stays pending.
func (uc *AuthUseCase) SendCode(ctx context.Context, in dto.SendCodeRequest) (*dto.SendCodeResponse, error) {
	phone := digits(in.Phone)
	if len(phone) != 10 {
		return nil, fmt.Errorf("%w: phone must be exactly 10 digits", domain.ErrValidation)
	}
	if !entity.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: role must be vendor or supplier", domain.ErrValidation)
	}

	code := fmt.Sprintf("%06d", 100000+rand.IntN(900000))
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash pending code: %w", err)
	}

	time.Sleep(uc.cfg.SendDelay)

	uc.mu.Lock()
	uc.state = StateCodeSent
	uc.phone = phone
	uc.role = in.Role
	uc.codeHash = hash
	uc.mu.Unlock()

	return &dto.SendCodeResponse{
		Phone:    phone,
		DemoCode: code,
		Message:  "OTP भेजा गया / OTP sent (demo only)",
	}, nil
}

// VerifyCode compares the submitted code against the pending one. On an
// exact match it emits and persists the authenticated session and issues a
// token after the simulated latency; on a mismatch the flow stays in
// CodeSent and the actor may retry immediately.
func (uc *AuthUseCase) VerifyCode(ctx context.Context, in dto.VerifyCodeRequest) (*dto.VerifyCodeResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.state != StateCodeSent {
		return nil, fmt.Errorf("%w: no code pending, request one first", domain.ErrPrecondition)
	}
	if bcrypt.CompareHashAndPassword(uc.codeHash, []byte(in.Code)) != nil {
		return nil, fmt.Errorf("%w: गलत OTP / incorrect OTP", domain.ErrMismatch)
	}

	time.Sleep(uc.cfg.VerifyDelay)

	session := &entity.Session{
		Role:          uc.role,
		Phone:         uc.phone,
		Authenticated: true,
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.cfg.JWT.Secret, session.Phone, session.Role, uc.cfg.JWT.Issuer, uc.cfg.JWT.ExpMinutes)
	if err != nil {
		return nil, err
	}

	uc.state = StateVerified
	uc.codeHash = nil

	return &dto.VerifyCodeResponse{
		Token: token,
		Session: dto.SessionResponse{
			Role:          session.Role,
			Phone:         session.Phone,
			Authenticated: true,
		},
	}, nil
}

// ChangeNumber clears the pending code and phone, returning to Unverified.
func (uc *AuthUseCase) ChangeNumber() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = StateUnverified
	uc.phone = ""
	uc.role = ""
	uc.codeHash = nil
}

// Logout destroys the stored session and resets the flow.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	if err := uc.sessions.Clear(ctx); err != nil {
		return err
	}
	uc.ChangeNumber()
	return nil
}

// digits strips everything but ASCII digits.
func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
