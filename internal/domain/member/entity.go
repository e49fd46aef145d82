package member

import "time"

type Member struct {
	id           int64
	email        Email
	name         Name
	passwordHash string
	role         Role
	createdAt    time.Time
}

// Ref points at a member without carrying its attributes.
type Ref struct {
	ID int64
}

func NewMember(email Email, name Name, passwordHash string) *Member {
	return &Member{
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         RoleUser,
	}
}

func NewAdmin(email Email, name Name, passwordHash string) *Member {
	m := NewMember(email, name, passwordHash)
	m.role = RoleAdmin
	return m
}

func ReconstructMember(id int64, email Email, name Name, passwordHash string, role Role, createdAt time.Time) *Member {
	return &Member{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (m *Member) Ref() Ref { return Ref{ID: m.id} }

func (m *Member) ID() int64            { return m.id }
func (m *Member) Email() Email         { return m.email }
func (m *Member) Name() Name           { return m.name }
func (m *Member) PasswordHash() string { return m.passwordHash }
func (m *Member) Role() Role           { return m.role }
func (m *Member) CreatedAt() time.Time { return m.createdAt }
