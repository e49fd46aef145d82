//go:build unit || e2e

package builder

import (
	"time"

	"roomescape/internal/domain/member"
	"roomescape/internal/usecase/queries"
)

type MemberBuilder struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Role         member.Role
	CreatedAt    time.Time
}

func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{
		ID:           1,
		Email:        "test@example.com",
		Name:         "tester",
		PasswordHash: "hashed_password",
		Role:         member.RoleUser,
		CreatedAt:    time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *MemberBuilder) With(mutate func(*MemberBuilder)) *MemberBuilder {
	mutate(m)
	return m
}

func (m *MemberBuilder) BuildDomain() *member.Member {
	email, err := member.NewEmail(m.Email)
	if err != nil {
		panic(err)
	}
	name, err := member.NewName(m.Name)
	if err != nil {
		panic(err)
	}
	return member.ReconstructMember(m.ID, email, name, m.PasswordHash, m.Role, m.CreatedAt)
}

func (m *MemberBuilder) BuildView() *queries.MemberView {
	return &queries.MemberView{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Role:  m.Role.String(),
	}
}

func (m *MemberBuilder) WithID(id int64) *MemberBuilder {
	m.ID = id
	return m
}

func (m *MemberBuilder) WithEmail(email string) *MemberBuilder {
	m.Email = email
	return m
}

func (m *MemberBuilder) WithPasswordHash(hash string) *MemberBuilder {
	m.PasswordHash = hash
	return m
}

func (m *MemberBuilder) AsAdmin() *MemberBuilder {
	m.Role = member.RoleAdmin
	return m
}
