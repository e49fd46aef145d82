//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"roomescape/internal/infra/db"
	"roomescape/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DBLike is anything fixtures can write through: the pool or an open transaction.
type DBLike = db.DBTX

// DefaultPassword is the plain password of every member CreateTestMember inserts.
const DefaultPassword = "password123"

var hasher = password.NewBcryptWithCost(bcrypt.MinCost)

func CreateTestMember(t *testing.T, db DBLike, email, role string) int64 {
	t.Helper()

	hash, err := hasher.Hash(DefaultPassword)
	require.NoError(t, err)

	var id int64
	ctx := context.Background()
	err = db.QueryRow(ctx, `
		INSERT INTO members (email, name, password_hash, role) VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
		RETURNING id`,
		email, strings.Split(email, "@")[0], hash, role).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestTheme(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO themes (name, description, thumbnail) VALUES ($1, $2, $3) RETURNING id",
		name, name+" description", "https://example.com/"+name+".png").Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestTimeSlot(t *testing.T, db DBLike, startAt string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO reservation_times (start_at) VALUES ($1::time) RETURNING id", startAt).Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateTestReservation writes the row directly, bypassing the past-date check.
func CreateTestReservation(t *testing.T, db DBLike, memberID, themeID, timeID int64, date string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO reservations (member_id, theme_id, time_id, date) VALUES ($1, $2, $3, $4::date) RETURNING id",
		memberID, themeID, timeID, date).Scan(&id)
	require.NoError(t, err)

	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and restarts their id sequences
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
