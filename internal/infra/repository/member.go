package repository

import (
	"context"
	"time"

	"roomescape/internal/domain/member"
	"roomescape/internal/infra/db"
	"roomescape/internal/pkg/errs"
)

const (
	memberColumns = `id, email, name, password_hash, role, created_at`

	existsMemberByID    = `SELECT EXISTS(SELECT 1 FROM members WHERE id = $1)`
	existsMemberByEmail = `SELECT EXISTS(SELECT 1 FROM members WHERE email = $1)`
	findMemberByEmail   = `SELECT ` + memberColumns + ` FROM members WHERE email = $1`
	insertMember        = `INSERT INTO members (email, name, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id`
)

type MemberRepository struct {
	db db.DBTX
}

func NewMemberRepository(db db.DBTX) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(r.db.QueryRow(ctx, existsMemberByID, id).Scan, "failed to check member existence")
}

func (r *MemberRepository) ExistsByEmail(ctx context.Context, email member.Email) (bool, error) {
	return exists(r.db.QueryRow(ctx, existsMemberByEmail, email.Value()).Scan, "failed to check member email")
}

func (r *MemberRepository) FindByEmail(ctx context.Context, email member.Email) (*member.Member, error) {
	m, err := scanMember(r.db.QueryRow(ctx, findMemberByEmail, email.Value()).Scan)
	if err != nil {
		return nil, classify("member not found", err)
	}
	return m, nil
}

func (r *MemberRepository) Insert(ctx context.Context, m *member.Member) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, insertMember,
		m.Email().Value(),
		m.Name().Value(),
		m.PasswordHash(),
		m.Role().String(),
	).Scan(&id)
	if err != nil {
		return 0, classify("failed to insert member", err)
	}
	return id, nil
}

func scanMember(scan func(dest ...any) error) (*member.Member, error) {
	var (
		id        int64
		email     string
		name      string
		hash      string
		role      string
		createdAt time.Time
	)
	if err := scan(&id, &email, &name, &hash, &role, &createdAt); err != nil {
		return nil, err
	}

	e, err := member.NewEmail(email)
	if err != nil {
		return nil, errs.Wrapf(err, "stored member %d has invalid email", id)
	}
	n, err := member.NewName(name)
	if err != nil {
		return nil, errs.Wrapf(err, "stored member %d has invalid name", id)
	}
	r, err := member.NewRole(role)
	if err != nil {
		return nil, errs.Wrapf(err, "stored member %d has invalid role", id)
	}
	return member.ReconstructMember(id, e, n, hash, r, createdAt), nil
}
