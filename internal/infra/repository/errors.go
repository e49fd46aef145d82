package repository

import (
	"roomescape/internal/infra"
	"roomescape/internal/pkg/pgconv"
)

// classify maps postgres constraint violations to their repository error kinds.
func classify(msg string, err error) error {
	switch {
	case pgconv.IsNoRows(err):
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	case pgconv.IsUniqueViolation(err):
		return infra.WrapRepoErr(msg+": "+pgconv.ConstraintName(err), err, infra.KindDuplicateKey)
	case pgconv.IsForeignKeyViolation(err):
		return infra.WrapRepoErr(msg+": "+pgconv.ConstraintName(err), err, infra.KindForeignKeyViolated)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}

func exists(scan func(dest ...any) error, msg string) (bool, error) {
	var ok bool
	if err := scan(&ok); err != nil {
		return false, infra.WrapRepoErr(msg, err)
	}
	return ok, nil
}
