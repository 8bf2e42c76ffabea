package main

import (
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/approvalmail/internal/config"
	"github.com/dmitrymomot/approvalmail/pkg/logger"
	"github.com/dmitrymomot/approvalmail/pkg/mailer"
)

var errNotSent = errors.New("approval email was not sent")

type runtimeState struct {
	cfg     *config.Config
	log     *slog.Logger
	envFile string
}

// NewRootCommand builds the approvalmail CLI.
func NewRootCommand() *cobra.Command {
	rt := &runtimeState{}

	root := &cobra.Command{
		Use:           "approvalmail",
		Short:         "Send account-approval notification emails",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if rt.envFile != "" {
				err = config.LoadEnv(rt.envFile)
			} else {
				err = config.LoadEnv()
			}
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			rt.cfg = cfg
			rt.log = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Logger, mailer.LogDispatchID)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&rt.envFile, "env-file", "", "dotenv file to load before reading the environment (default .env if present)")

	root.AddCommand(
		newSendCommand(rt),
		newRenderCommand(rt),
		newLogDetailsCommand(rt),
		newServeCommand(rt),
	)

	return root
}

func (rt *runtimeState) notifier(reg prometheus.Registerer) (*mailer.Notifier, error) {
	metrics, err := mailer.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	return mailer.NewNotifier(rt.cfg.NewSender(), rt.cfg.Mailer,
		mailer.WithLogger(rt.log),
		mailer.WithMetrics(metrics),
	), nil
}
