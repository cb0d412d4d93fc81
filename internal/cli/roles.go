package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Lex0104/Saphir/internal/config"
	dbpkg "github.com/Lex0104/Saphir/internal/db"
	"github.com/Lex0104/Saphir/internal/models"
)

func newRolesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Manage permission roles",
	}
	cmd.AddCommand(newEnsureManagerCmd())
	cmd.AddCommand(newGrantCmd())
	return cmd
}

// One-time idempotent setup: the Manager role grants reservation-list
// visibility and edit/delete rights over any reservation.
func newEnsureManagerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-manager",
		Short: "Create the Manager role if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db := dbpkg.NewDB(cfg)

			role := models.Role{Name: models.RoleManager}
			res := db.Where("name = ?", models.RoleManager).FirstOrCreate(&role)
			if res.Error != nil {
				return res.Error
			}

			if res.RowsAffected > 0 {
				fmt.Printf("Role %q created.\n", models.RoleManager)
			} else {
				fmt.Printf("Role %q already exists.\n", models.RoleManager)
			}
			return nil
		},
	}
}

func newGrantCmd() *cobra.Command {
	var email, roleName string

	c := &cobra.Command{
		Use:   "grant",
		Short: "Grant a role to a user by email",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db := dbpkg.NewDB(cfg)

			var user models.User
			if err := db.Where("email = ?", email).First(&user).Error; err != nil {
				return fmt.Errorf("user %q: %w", email, err)
			}

			if err := assignRole(db, &user, roleName); err != nil {
				return err
			}

			fmt.Printf("Granted %q to %s.\n", roleName, email)
			return nil
		},
	}

	c.Flags().StringVar(&email, "email", "", "user email")
	c.Flags().StringVar(&roleName, "role", models.RoleManager, "role name")
	_ = c.MarkFlagRequired("email")

	return c
}

func assignRole(db *gorm.DB, user *models.User, roleName string) error {
	var role models.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		return err
	}
	return db.Model(user).Association("Roles").Append(&role)
}
