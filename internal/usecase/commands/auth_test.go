//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomescape/internal/domain/auth"
	"roomescape/internal/domain/member"
	"roomescape/internal/infra"
	"roomescape/internal/pkg/errs"
	"roomescape/internal/usecase/commands"
	"roomescape/tests/common/builder"
	commandsmock "roomescape/tests/mock/commands"
	sharedmock "roomescape/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	tx         *txMocks
	hasher     *commandsmock.MockPasswordHasher
	comparator *commandsmock.MockCredentialComparator
	issuer     *commandsmock.MockTokenIssuer
	revoker    *sharedmock.MockTokenRevoker
	commands   commands.AuthCommands
	ctx        context.Context
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tx = newTxMocks(s.ctrl)
	s.hasher = commandsmock.NewMockPasswordHasher(s.ctrl)
	s.comparator = commandsmock.NewMockCredentialComparator(s.ctrl)
	s.issuer = commandsmock.NewMockTokenIssuer(s.ctrl)
	s.revoker = sharedmock.NewMockTokenRevoker(s.ctrl)
	s.commands = commands.NewAuthCommands(s.tx.uow, s.hasher, s.comparator, s.issuer, s.revoker)
	s.ctx = context.Background()
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestSignup() {
	req := builder.NewAuthBuilder().BuildSignupDTO()

	s.Run("success: stores a USER with the hashed password", func() {
		s.hasher.EXPECT().Hash(req.Password).Return("hashed", nil)
		s.tx.members.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
		s.tx.members.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *member.Member) (int64, error) {
				s.Equal("hashed", m.PasswordHash())
				s.Equal(member.RoleUser, m.Role())
				return 11, nil
			})

		view, err := s.commands.Signup(s.ctx, req)

		s.Require().NoError(err)
		s.Equal(int64(11), view.ID)
		s.Equal(req.Email, view.Email)
		s.Equal("USER", view.Role)
	})

	s.Run("error: email already registered", func() {
		s.hasher.EXPECT().Hash(req.Password).Return("hashed", nil)
		s.tx.members.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := s.commands.Signup(s.ctx, req)

		s.True(errs.Is(err, errs.ErrDuplicateEmail))
	})

	s.Run("error: unique violation on insert maps to duplicate email", func() {
		s.hasher.EXPECT().Hash(req.Password).Return("hashed", nil)
		s.tx.members.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
		s.tx.members.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("duplicate", errors.New("23505"), infra.KindDuplicateKey))

		_, err := s.commands.Signup(s.ctx, req)

		s.True(errs.Is(err, errs.ErrDuplicateEmail))
	})

	s.Run("error: invalid email is a validation error", func() {
		bad := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) { b.Email = "not-an-email" }).BuildSignupDTO()

		_, err := s.commands.Signup(s.ctx, bad)

		s.True(errs.Is(err, errs.ErrValidation))
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	req := builder.NewAuthBuilder().BuildDTO()
	stored := builder.NewMemberBuilder().WithEmail(req.Email).WithPasswordHash("stored-hash").BuildDomain()

	s.Run("success: issues a token for matching credentials", func() {
		s.tx.members.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(stored, nil)
		s.comparator.EXPECT().Matches(req.Password, "stored-hash").Return(true)
		s.issuer.EXPECT().GenerateToken(stored).Return("signed-token", nil)
		s.issuer.EXPECT().TokenDuration().Return(30 * time.Minute)

		result, err := s.commands.Login(s.ctx, req)

		s.Require().NoError(err)
		s.Equal("signed-token", result.Token)
		s.Equal(30*time.Minute, result.ExpiresIn)
		s.Equal(stored.ID(), result.Member.ID)
	})

	s.Run("error: unknown email", func() {
		s.tx.members.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("member not found", nil, infra.KindNotFound))

		_, err := s.commands.Login(s.ctx, req)

		s.True(errs.Is(err, errs.ErrMemberNotFound))
	})

	s.Run("error: wrong password", func() {
		s.tx.members.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(stored, nil)
		s.comparator.EXPECT().Matches(req.Password, "stored-hash").Return(false)

		_, err := s.commands.Login(s.ctx, req)

		s.True(errs.Is(err, errs.ErrInvalidCredential))
	})

	s.Run("error: signing failure", func() {
		s.tx.members.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(stored, nil)
		s.comparator.EXPECT().Matches(gomock.Any(), gomock.Any()).Return(true)
		s.issuer.EXPECT().GenerateToken(stored).Return("", errors.New("bad key"))

		_, err := s.commands.Login(s.ctx, req)

		s.True(errs.Is(err, errs.ErrTokenGeneration))
	})
}

func (s *AuthCommandsTestSuite) TestLogout() {
	expiresAt := time.Date(2100, 1, 1, 0, 30, 0, 0, time.UTC)

	s.Run("success: revokes the token id until expiry", func() {
		s.revoker.EXPECT().Revoke(gomock.Any(), "jti-1", expiresAt).Return(nil)

		err := s.commands.Logout(s.ctx, auth.Principal{MemberID: 1, TokenID: "jti-1", ExpiresAt: expiresAt})

		s.NoError(err)
	})

	s.Run("success: tokens without an id are a no-op", func() {
		s.NoError(s.commands.Logout(s.ctx, auth.Principal{MemberID: 1}))
	})

	s.Run("error: store failure", func() {
		s.revoker.EXPECT().Revoke(gomock.Any(), "jti-2", expiresAt).Return(errors.New("redis down"))

		err := s.commands.Logout(s.ctx, auth.Principal{MemberID: 1, TokenID: "jti-2", ExpiresAt: expiresAt})

		s.True(errs.Is(err, errs.ErrTokenRevocationFail))
	})
}
