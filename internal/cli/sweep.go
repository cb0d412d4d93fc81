package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lex0104/Saphir/internal/config"
	dbpkg "github.com/Lex0104/Saphir/internal/db"
	infraRepo "github.com/Lex0104/Saphir/internal/infra/repository"
	"github.com/Lex0104/Saphir/internal/notify"
	"github.com/Lex0104/Saphir/internal/sweep"
	"github.com/Lex0104/Saphir/internal/timezone"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run one sweep pass manually",
	}
	cmd.AddCommand(newSweepExpireCmd())
	cmd.AddCommand(newSweepRemindCmd())
	return cmd
}

func newSweeper() (*sweep.Sweeper, *notify.ChanQueue) {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var mailer notify.Mailer = notify.LogMailer{}
	if cfg.SMTPAddr != "" {
		mailer = notify.SMTPMailer{Addr: cfg.SMTPAddr, From: cfg.MailFrom}
	}

	queue := notify.NewChanQueue(mailer, 1)
	repo := infraRepo.NewReservationGormRepository(db)
	return sweep.NewSweeper(repo, queue, timezone.Location(cfg.Timezone)), queue
}

func newSweepExpireCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expire",
		Short: "Deactivate reservations whose start time is more than 30 minutes past",
		RunE: func(cmd *cobra.Command, args []string) error {
			sweeper, queue := newSweeper()
			defer queue.Close()

			n, err := sweeper.ExpireOverdue(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Expired %d reservation(s).\n", n)
			return nil
		},
	}
}

func newSweepRemindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Send same-day reminder mail for active reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			sweeper, queue := newSweeper()
			defer queue.Close()

			n, err := sweeper.SendReminders(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Sent %d reminder(s).\n", n)
			return nil
		},
	}
}
