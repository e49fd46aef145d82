package cli

import (
	"context"
	"fmt"
	"os"

	"roomescape/internal/domain/member"
	"roomescape/internal/infra/db"
	"roomescape/internal/infra/repository"
	"roomescape/internal/pkg/config"
	"roomescape/internal/pkg/errs"
	"roomescape/internal/pkg/password"
	"roomescape/migrations"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts",
	}
	cmd.AddCommand(newAdminAddCmd())
	return cmd
}

func newAdminAddCmd() *cobra.Command {
	var email, name, plain string

	c := &cobra.Command{
		Use:   "add",
		Short: "Create a member with the ADMIN role",
		RunE: func(cmd *cobra.Command, args []string) error {
			emailVO, err := member.NewEmail(email)
			if err != nil {
				return err
			}
			nameVO, err := member.NewName(name)
			if err != nil {
				return err
			}
			passwordVO, err := member.NewPassword(plain)
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, cleanup, err := db.Connect(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := db.Migrate(ctx, pool, migrations.FS); err != nil {
				return err
			}

			hash, err := password.NewBcrypt().Hash(passwordVO.Value())
			if err != nil {
				return errs.Wrap(err, "failed to hash password")
			}

			repo := repository.NewMemberRepository(pool)
			id, err := repo.Insert(ctx, member.NewAdmin(emailVO, nameVO, hash))
			if err != nil {
				return errs.Wrap(err, "failed to create admin")
			}
			fmt.Fprintf(os.Stdout, "created admin %q (id=%d)\n", email, id)
			return nil
		},
	}

	c.Flags().StringVar(&email, "email", "", "login email")
	c.Flags().StringVar(&name, "name", "", "display name")
	c.Flags().StringVar(&plain, "password", "", "login password")
	_ = c.MarkFlagRequired("email")
	_ = c.MarkFlagRequired("name")
	_ = c.MarkFlagRequired("password")
	return c
}
