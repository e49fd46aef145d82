package commands

import (
	"context"
	"time"

	"roomescape/internal/domain/auth"
	"roomescape/internal/domain/member"
	reqdto "roomescape/internal/handler/dto/request"
	"roomescape/internal/pkg/errs"
	"roomescape/internal/usecase/queries"
	"roomescape/internal/usecase/shared"
)

type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
	Member    queries.MemberView
}

type AuthCommands interface {
	Signup(ctx context.Context, req reqdto.SignupRequest) (*queries.MemberView, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, principal auth.Principal) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	hasher     PasswordHasher
	comparator CredentialComparator
	issuer     TokenIssuer
	revoker    shared.TokenRevoker
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	hasher PasswordHasher,
	comparator CredentialComparator,
	issuer TokenIssuer,
	revoker shared.TokenRevoker,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		hasher:     hasher,
		comparator: comparator,
		issuer:     issuer,
		revoker:    revoker,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, req reqdto.SignupRequest) (*queries.MemberView, error) {
	fields, err := req.ToDomain()
	if err != nil {
		return nil, validationErr(err)
	}

	hash, err := a.hasher.Hash(fields.Password.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	m := member.NewMember(fields.Email, fields.Name, hash)
	var id int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Members().ExistsByEmail(ctx, fields.Email)
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrDuplicateEmail
		}

		id, err = tx.Members().Insert(ctx, m)
		return mapStoreErr(err, errs.ErrDuplicateEmail, nil, nil)
	})
	if err != nil {
		return nil, err
	}

	return &queries.MemberView{
		ID:    id,
		Name:  m.Name().Value(),
		Email: m.Email().Value(),
		Role:  m.Role().String(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, validationErr(err)
	}

	var m *member.Member
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err = tx.Members().FindByEmail(ctx, credentials.Email())
		return mapStoreErr(err, nil, nil, errs.ErrMemberNotFound)
	})
	if err != nil {
		return nil, err
	}

	if !a.comparator.Matches(credentials.Password().Value(), m.PasswordHash()) {
		return nil, errs.ErrInvalidCredential
	}

	token, err := a.issuer.GenerateToken(m)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenGeneration)
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: a.issuer.TokenDuration(),
		Member: queries.MemberView{
			ID:    m.ID(),
			Name:  m.Name().Value(),
			Email: m.Email().Value(),
			Role:  m.Role().String(),
		},
	}, nil
}

// Logout denies the presented token until it would have expired anyway.
func (a *authCommandsImpl) Logout(ctx context.Context, principal auth.Principal) error {
	if principal.TokenID == "" {
		return nil
	}
	if err := a.revoker.Revoke(ctx, principal.TokenID, principal.ExpiresAt); err != nil {
		return errs.Mark(err, errs.ErrTokenRevocationFail)
	}
	return nil
}
