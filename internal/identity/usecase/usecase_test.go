package usecase

import (
	"context"
	"testing"
	"time"

	libjwt "github.com/golang-jwt/jwt/v5"
	"github.com/shandysiswandi/venture/internal/identity/entity"
	"github.com/shandysiswandi/venture/internal/pkg/clock"
	"github.com/shandysiswandi/venture/internal/pkg/goerror"
	"github.com/shandysiswandi/venture/internal/pkg/hash"
	"github.com/shandysiswandi/venture/internal/pkg/idempotency"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/jwt"
	"github.com/shandysiswandi/venture/internal/pkg/otp"
	"github.com/shandysiswandi/venture/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepoDB struct {
	mock.Mock
}

func (m *mockRepoDB) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockRepoDB) GetUserByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockRepoDB) CreateUser(ctx context.Context, in entity.NewUser) (*entity.User, error) {
	args := m.Called(ctx, in)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockRepoDB) UpdateUserPassword(ctx context.Context, email, hash string) error {
	return m.Called(ctx, email, hash).Error(0)
}

type mockRepoMessaging struct {
	mock.Mock
}

func (m *mockRepoMessaging) PublishUserRegistered(ctx context.Context, msg UserRegisteredEvent) error {
	return m.Called(ctx, msg).Error(0)
}

type mockIssuer struct {
	mock.Mock
}

func (m *mockIssuer) Issue(ctx context.Context, email string) (otp.IssueResult, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(otp.IssueResult), args.Error(1)
}

func (m *mockIssuer) TTL() time.Duration {
	return 300 * time.Second
}

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Verify(ctx context.Context, email, code string) (otp.VerifyOutcome, error) {
	args := m.Called(ctx, email, code)
	return args.Get(0).(otp.VerifyOutcome), args.Error(1)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) Generate(uid int64, email string) (string, error) {
	args := m.Called(uid, email)
	return args.String(0), args.Error(1)
}

func (m *mockJWT) GenerateVerification(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func (m *mockJWT) Verify(tokenStr string) (jwt.Claims, error) {
	args := m.Called(tokenStr)
	return args.Get(0).(jwt.Claims), args.Error(1)
}

// memIdempotency keeps completed keys in memory.
type memIdempotency struct {
	done map[string]struct{}
}

func (m *memIdempotency) Acquire(context.Context, string, time.Duration) (idempotency.State, error) {
	return idempotency.StateNone, nil
}

func (m *memIdempotency) MarkCompleted(context.Context, string, time.Duration) error { return nil }

func (m *memIdempotency) MarkFailed(context.Context, string, time.Duration) error { return nil }

func (m *memIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	if _, ok := m.done[key]; ok {
		return idempotency.ErrAlreadyCompleted
	}
	m.done[key] = struct{}{}
	return fn(ctx)
}

type fixedUID int64

func (f fixedUID) Generate() int64 { return int64(f) }

var testNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

type fixture struct {
	db     *mockRepoDB
	mq     *mockRepoMessaging
	issuer *mockIssuer
	verify *mockVerifier
	jwt    *mockJWT
	idemp  *memIdempotency
	bcrypt hash.Hash
	uc     *Usecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	f := &fixture{
		db:     new(mockRepoDB),
		mq:     new(mockRepoMessaging),
		issuer: new(mockIssuer),
		verify: new(mockVerifier),
		jwt:    new(mockJWT),
		idemp:  &memIdempotency{done: map[string]struct{}{}},
		bcrypt: hash.NewBcrypt(4, ""),
	}
	f.uc = New(Dependency{
		RepoDB:        f.db,
		RepoMessaging: f.mq,
		Issuer:        f.issuer,
		Verifier:      f.verify,
		Idempotency:   f.idemp,
		Validator:     v,
		Bcrypt:        f.bcrypt,
		UID:           fixedUID(99),
		Clock:         clock.NewManual(testNow),
		JWT:           f.jwt,
		Instrument:    instrument.NewNoop(),
	})

	t.Cleanup(func() {
		f.db.AssertExpectations(t)
		f.mq.AssertExpectations(t)
		f.issuer.AssertExpectations(t)
		f.verify.AssertExpectations(t)
		f.jwt.AssertExpectations(t)
	})
	return f
}

func verificationCtx(jti, email string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		RegisteredClaims: libjwt.RegisteredClaims{
			ID:        jti,
			Subject:   email,
			ExpiresAt: libjwt.NewNumericDate(testNow.Add(5 * time.Minute)),
		},
		Purpose:   jwt.PurposeVerification,
		UserEmail: email,
	})
}

func sessionCtx(uid int64, email string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		RegisteredClaims: libjwt.RegisteredClaims{
			ID:        "session-jti",
			ExpiresAt: libjwt.NewNumericDate(testNow.Add(time.Hour)),
		},
		Purpose:   jwt.PurposeSession,
		UserID:    uid,
		UserEmail: email,
	})
}

func requireCode(t *testing.T, err error, code goerror.Code) *goerror.Error {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, code, gerr.Code(), gerr.String())
	return gerr
}

func mustHash(t *testing.T, h hash.Hash, plain string) string {
	t.Helper()

	b, err := h.Hash(plain)
	require.NoError(t, err)
	return string(b)
}
