package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorconnect/api/internal/application/auth"
	"github.com/vendorconnect/api/internal/application/dto"
	"github.com/vendorconnect/api/internal/domain"
	"github.com/vendorconnect/api/internal/domain/entity"
	"github.com/vendorconnect/api/internal/infrastructure/memory"
	"github.com/vendorconnect/api/internal/infrastructure/state"
	pkgjwt "github.com/vendorconnect/api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// newFlow builds a flow over an in-memory store with zero delays.
func newFlow(t *testing.T) (*auth.AuthUseCase, *state.SessionRepository) {
	t.Helper()
	sessions := state.NewSessionRepository(memory.New())
	uc := auth.NewAuthUseCase(sessions, auth.Config{
		JWT: auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "vendorconnect-test"},
	})
	return uc, sessions
}

// sendCode drives the flow to CodeSent and returns the demo code.
func sendCode(t *testing.T, uc *auth.AuthUseCase, phone, role string) string {
	t.Helper()
	out, err := uc.SendCode(context.Background(), dto.SendCodeRequest{Phone: phone, Role: role})
	require.NoError(t, err)
	return out.DemoCode
}

func TestSendCode_ValidPhone_TransitionsToCodeSent(t *testing.T) {
	uc, _ := newFlow(t)

	out, err := uc.SendCode(context.Background(), dto.SendCodeRequest{Phone: "9876543210", Role: entity.RoleVendor})
	require.NoError(t, err)

	assert.Equal(t, auth.StateCodeSent, uc.State())
	assert.Equal(t, "9876543210", out.Phone)
	assert.Len(t, out.DemoCode, 6, "the displayed code has exactly 6 digits")
	for _, r := range out.DemoCode {
		assert.True(t, r >= '0' && r <= '9', "code must be numeric")
	}
}

func TestSendCode_StripsNonDigitsBeforeCheck(t *testing.T) {
	uc, _ := newFlow(t)

	out, err := uc.SendCode(context.Background(), dto.SendCodeRequest{Phone: "(98765) 432-10", Role: entity.RoleSupplier})
	require.NoError(t, err)
	assert.Equal(t, "9876543210", out.Phone)
}

func TestSendCode_WrongLength_NoTransition(t *testing.T) {
	uc, _ := newFlow(t)

	for _, phone := range []string{"", "12345", "98765432101", "abcdefghij"} {
		_, err := uc.SendCode(context.Background(), dto.SendCodeRequest{Phone: phone, Role: entity.RoleVendor})
		assert.ErrorIs(t, err, domain.ErrValidation, "phone %q must be rejected", phone)
		assert.Equal(t, auth.StateUnverified, uc.State(), "state must not change on validation failure")
	}
}

func TestSendCode_UnknownRole_Rejected(t *testing.T) {
	uc, _ := newFlow(t)

	_, err := uc.SendCode(context.Background(), dto.SendCodeRequest{Phone: "9876543210", Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVerifyCode_ExactMatch_EmitsSession(t *testing.T) {
	uc, sessions := newFlow(t)
	code := sendCode(t, uc, "9876543210", entity.RoleVendor)

	out, err := uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Code: code})
	require.NoError(t, err)

	assert.Equal(t, auth.StateVerified, uc.State())
	assert.Equal(t, entity.RoleVendor, out.Session.Role)
	assert.Equal(t, "9876543210", out.Session.Phone)
	assert.True(t, out.Session.Authenticated)

	// The token embeds the same identity.
	phone, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", phone)
	assert.Equal(t, entity.RoleVendor, role)

	// And the session is durably stored.
	stored, err := sessions.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Valid(entity.RoleVendor))
}

func TestVerifyCode_Mismatch_StaysInCodeSent(t *testing.T) {
	uc, sessions := newFlow(t)
	code := sendCode(t, uc, "9876543210", entity.RoleVendor)

	// The generated code is uniform over [100000, 999999], so "000000"
	// can never match.
	_, err := uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Code: "000000"})
	assert.ErrorIs(t, err, domain.ErrMismatch)
	assert.Equal(t, auth.StateCodeSent, uc.State())

	stored, err := sessions.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stored, "no session may be created on mismatch")

	// Retry with the right code succeeds immediately; there is no limit.
	_, err = uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Code: code})
	assert.NoError(t, err)
}

func TestVerifyCode_WithoutPendingCode_Precondition(t *testing.T) {
	uc, _ := newFlow(t)

	_, err := uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Code: "123456"})
	assert.ErrorIs(t, err, domain.ErrPrecondition)
}

func TestChangeNumber_ClearsPendingCode(t *testing.T) {
	uc, _ := newFlow(t)
	code := sendCode(t, uc, "9876543210", entity.RoleVendor)

	uc.ChangeNumber()
	assert.Equal(t, auth.StateUnverified, uc.State())

	_, err := uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Code: code})
	assert.ErrorIs(t, err, domain.ErrPrecondition, "the old code is gone after a number change")
}

func TestLogout_ClearsSessionAndResetsFlow(t *testing.T) {
	uc, sessions := newFlow(t)
	code := sendCode(t, uc, "9876543210", entity.RoleSupplier)
	_, err := uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Code: code})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background()))

	stored, err := sessions.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Equal(t, auth.StateUnverified, uc.State())
}
