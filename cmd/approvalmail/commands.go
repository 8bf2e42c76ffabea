package main

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/approvalmail/internal/server"
	"github.com/dmitrymomot/approvalmail/pkg/mailer"
)

func newSendCommand(rt *runtimeState) *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send the approval email to one recipient",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := rt.notifier(nil)
			if err != nil {
				return err
			}

			sent := n.SendApprovalEmail(cmd.Context(), email, name)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sent: %t\n", sent)
			if !sent {
				return errNotSent
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "recipient email address")
	cmd.Flags().StringVar(&name, "name", "", "recipient display name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newRenderCommand(rt *runtimeState) *cobra.Command {
	var name, loginURL string
	var text bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the approval email without sending it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if loginURL == "" {
				loginURL = rt.cfg.Mailer.LoginURL()
			}

			msg, err := mailer.RenderApproval(name, loginURL)
			if err != nil {
				return err
			}

			out := msg.HTML
			if text {
				out = msg.Text
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "recipient display name")
	cmd.Flags().StringVar(&loginURL, "login-url", "", "login link (default APP_URL + MAILER_LOGIN_PATH)")
	cmd.Flags().BoolVar(&text, "text", false, "print the plain-text alternative instead of HTML")

	return cmd
}

func newLogDetailsCommand(rt *runtimeState) *cobra.Command {
	var to, subject, body string

	cmd := &cobra.Command{
		Use:   "log-details",
		Short: "Write an email to the log instead of sending it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := rt.notifier(nil)
			if err != nil {
				return err
			}
			n.LogEmailDetails(cmd.Context(), to, subject, body)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "recipient email address")
	cmd.Flags().StringVar(&subject, "subject", "", "email subject")
	cmd.Flags().StringVar(&body, "body", "", "email body")

	return cmd
}

func newServeCommand(rt *runtimeState) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the approval notification HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = rt.cfg.HTTPAddr
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			n, err := rt.notifier(reg)
			if err != nil {
				return err
			}
			if !n.Configured() {
				rt.log.Warn("email delivery is not configured, approval emails will only be logged",
					slog.String("provider", rt.cfg.Provider),
				)
			}

			router := server.NewRouter(n,
				server.WithLogger(rt.log),
				server.WithGatherer(reg),
			)
			return server.Run(cmd.Context(), router, server.RunConfig{
				Address: addr,
				Logger:  rt.log,
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default HTTP_ADDR)")

	return cmd
}
