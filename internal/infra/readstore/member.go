package readstore

import (
	"context"

	"roomescape/internal/infra"
	"roomescape/internal/infra/db"
	"roomescape/internal/pkg/pgconv"
	"roomescape/internal/usecase/queries"
)

const (
	findAllMemberViews = `SELECT id, name, email, role FROM members ORDER BY id`
	findMemberViewByID = `SELECT id, name, email, role FROM members WHERE id = $1`
)

type MemberReadStore struct {
	db db.DBTX
}

func NewMemberReadStore(db db.DBTX) *MemberReadStore {
	return &MemberReadStore{db: db}
}

func (r *MemberReadStore) FindAll(ctx context.Context) ([]*queries.MemberView, error) {
	rows, err := r.db.Query(ctx, findAllMemberViews)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find members", err)
	}
	defer rows.Close()

	result := make([]*queries.MemberView, 0)
	for rows.Next() {
		var v queries.MemberView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Role); err != nil {
			return nil, infra.WrapRepoErr("failed to scan member", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate members", err)
	}
	return result, nil
}

func (r *MemberReadStore) FindByID(ctx context.Context, id int64) (*queries.MemberView, error) {
	var v queries.MemberView
	err := r.db.QueryRow(ctx, findMemberViewByID, id).Scan(&v.ID, &v.Name, &v.Email, &v.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member by ID", err)
	}
	return &v, nil
}
