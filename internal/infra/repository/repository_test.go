//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomescape/internal/domain/member"
	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/theme"
	"roomescape/internal/domain/timeslot"
	"roomescape/internal/infra"
	"roomescape/internal/infra/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDBConnectionLost = errors.New("database connection lost")

// stubDBTX answers QueryRow with scan and Exec with tag/execErr. Query is never used by these tests.
type stubDBTX struct {
	scan    func(dest ...any) error
	tag     pgconn.CommandTag
	execErr error
	lastSQL string
	args    []any
}

func (m *stubDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	m.lastSQL, m.args = sql, arguments
	return m.tag, m.execErr
}

func (m *stubDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("stubDBTX.Query was called unexpectedly")
}

func (m *stubDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.lastSQL, m.args = sql, args
	return stubRow{scan: m.scan}
}

type stubRow struct {
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error {
	return r.scan(dest...)
}

func scanID(id int64) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int64) = id
		return nil
	}
}

func scanBool(v bool) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*bool) = v
		return nil
	}
}

func failScan(err error) func(dest ...any) error {
	return func(dest ...any) error { return err }
}

func newReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	date, err := reservation.ParseDate("2100-08-05")
	require.NoError(t, err)
	return reservation.ReconstructReservation(0, member.Ref{ID: 1}, theme.Ref{ID: 2}, timeslot.Ref{ID: 3}, date, time.Now())
}

// =============================================================================
// Reservation Insert Tests
// =============================================================================

func TestReservationRepository_Insert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		scan       func(dest ...any) error
		expectID   int64
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:     "success: returns the generated id",
			scan:     scanID(42),
			expectID: 42,
		},
		{
			name:       "error: unique violation is a duplicate key",
			scan:       failScan(&pgconn.PgError{Code: "23505", ConstraintName: "reservations_date_time_theme_key"}),
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: foreign key violation",
			scan:       failScan(&pgconn.PgError{Code: "23503", ConstraintName: "reservations_theme_id_fkey"}),
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "error: database failure",
			scan:       failScan(errDBConnectionLost),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB := &stubDBTX{scan: tc.scan}
			repo := repository.NewReservationRepository(mockDB)

			id, err := repo.Insert(ctx, newReservation(t))

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Zero(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectID, id)
			require.Len(t, mockDB.args, 5)
			assert.Equal(t, int64(1), mockDB.args[0])
			assert.Equal(t, int64(2), mockDB.args[1])
			assert.Equal(t, int64(3), mockDB.args[2])
		})
	}
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		db         *stubDBTX
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: one row deleted",
			db:   &stubDBTX{tag: pgconn.NewCommandTag("DELETE 1")},
		},
		{
			name:       "error: no row deleted",
			db:         &stubDBTX{tag: pgconn.NewCommandTag("DELETE 0")},
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: still referenced",
			db:         &stubDBTX{execErr: &pgconn.PgError{Code: "23503"}},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "error: database failure",
			db:         &stubDBTX{execErr: errDBConnectionLost},
			expectKind: infra.KindDBFailure,
		},
	}

	deleters := map[string]func(db *stubDBTX) func(ctx context.Context, id int64) error{
		"reservation": func(db *stubDBTX) func(ctx context.Context, id int64) error {
			return repository.NewReservationRepository(db).DeleteByID
		},
		"time slot": func(db *stubDBTX) func(ctx context.Context, id int64) error {
			return repository.NewTimeSlotRepository(db).DeleteByID
		},
		"theme": func(db *stubDBTX) func(ctx context.Context, id int64) error {
			return repository.NewThemeRepository(db).DeleteByID
		},
	}

	for store, newDelete := range deleters {
		for _, tc := range testCases {
			t.Run(store+"/"+tc.name, func(t *testing.T) {
				db := &stubDBTX{tag: tc.db.tag, execErr: tc.db.execErr}

				err := newDelete(db)(ctx, 7)

				if tc.expectKind != "" {
					require.Error(t, err)
					assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, []any{int64(7)}, db.args)
			})
		}
	}
}

// =============================================================================
// Exists / Find Tests
// =============================================================================

func TestReservationRepository_ExistsByDateAndTimeSlotAndTheme(t *testing.T) {
	ctx := context.Background()
	date, err := reservation.ParseDate("2100-08-05")
	require.NoError(t, err)

	t.Run("success: reports the scanned flag", func(t *testing.T) {
		repo := repository.NewReservationRepository(&stubDBTX{scan: scanBool(true)})

		ok, err := repo.ExistsByDateAndTimeSlotAndTheme(ctx, date, 1, 2)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("error: database failure", func(t *testing.T) {
		repo := repository.NewReservationRepository(&stubDBTX{scan: failScan(errDBConnectionLost)})

		_, err := repo.ExistsByDateAndTimeSlotAndTheme(ctx, date, 1, 2)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestTimeSlotRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: converts the stored time of day", func(t *testing.T) {
		repo := repository.NewTimeSlotRepository(&stubDBTX{scan: func(dest ...any) error {
			*dest[0].(*int64) = 5
			*dest[1].(*pgtype.Time) = pgtype.Time{Microseconds: int64((10*time.Hour + 30*time.Minute) / time.Microsecond), Valid: true}
			return nil
		}})

		slot, err := repo.FindByID(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(5), slot.ID())
		assert.Equal(t, "10:30", slot.StartAt().String())
	})

	t.Run("error: missing row is not found", func(t *testing.T) {
		repo := repository.NewTimeSlotRepository(&stubDBTX{scan: failScan(pgx.ErrNoRows)})

		_, err := repo.FindByID(ctx, 5)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestMemberRepository_Insert(t *testing.T) {
	ctx := context.Background()
	email, err := member.NewEmail("test@example.com")
	require.NoError(t, err)
	name, err := member.NewName("tester")
	require.NoError(t, err)

	t.Run("error: duplicate email", func(t *testing.T) {
		repo := repository.NewMemberRepository(&stubDBTX{scan: failScan(&pgconn.PgError{Code: "23505", ConstraintName: "members_email_key"})})

		_, err := repo.Insert(ctx, member.NewMember(email, name, "hash"))

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("success: stores role USER", func(t *testing.T) {
		db := &stubDBTX{scan: scanID(9)}
		repo := repository.NewMemberRepository(db)

		id, err := repo.Insert(ctx, member.NewMember(email, name, "hash"))

		require.NoError(t, err)
		assert.Equal(t, int64(9), id)
		assert.Equal(t, []any{"test@example.com", "tester", "hash", "USER"}, db.args)
	})
}

func scanMemberRow(email, name, role string) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int64) = 4
		*dest[1].(*string) = email
		*dest[2].(*string) = name
		*dest[3].(*string) = "hash"
		*dest[4].(*string) = role
		*dest[5].(*time.Time) = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
		return nil
	}
}

func TestMemberRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	email, err := member.NewEmail("user@example.com")
	require.NoError(t, err)

	t.Run("success: row is reconstructed", func(t *testing.T) {
		repo := repository.NewMemberRepository(&stubDBTX{scan: scanMemberRow("user@example.com", "user", "ADMIN")})

		m, err := repo.FindByEmail(ctx, email)

		require.NoError(t, err)
		assert.Equal(t, int64(4), m.ID())
		assert.Equal(t, "user", m.Name().Value())
		assert.Equal(t, member.RoleAdmin, m.Role())
	})

	tests := []struct {
		name string
		scan func(dest ...any) error
		kind infra.RepositoryErrorKind
	}{
		{name: "error: no row", scan: failScan(pgx.ErrNoRows), kind: infra.KindNotFound},
		{name: "error: stored email is invalid", scan: scanMemberRow("not-an-email", "user", "USER"), kind: infra.KindDBFailure},
		{name: "error: stored name is empty", scan: scanMemberRow("user@example.com", "", "USER"), kind: infra.KindDBFailure},
		{name: "error: stored role is unknown", scan: scanMemberRow("user@example.com", "user", "OWNER"), kind: infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMemberRepository(&stubDBTX{scan: tt.scan})

			m, err := repo.FindByEmail(ctx, email)

			assert.Nil(t, m)
			assert.True(t, infra.IsKind(err, tt.kind), "got %v", err)
		})
	}
}
