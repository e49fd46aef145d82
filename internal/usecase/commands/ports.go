package commands

import (
	"time"

	"roomescape/internal/domain/member"
	"roomescape/internal/infra"
	"roomescape/internal/pkg/errs"
)

type TokenIssuer interface {
	GenerateToken(m *member.Member) (string, error)
	TokenDuration() time.Duration
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// CredentialComparator checks a submitted password against the stored hash; it never decrypts.
type CredentialComparator interface {
	Matches(plain, stored string) bool
}

// mapStoreErr translates repository failure kinds into the sentinel the caller expects for each kind.
func mapStoreErr(err error, onDuplicate, onForeignKey, onNotFound error) error {
	switch {
	case onDuplicate != nil && infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, onDuplicate)
	case onForeignKey != nil && infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, onForeignKey)
	case onNotFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, onNotFound)
	default:
		return err
	}
}

func validationErr(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}
