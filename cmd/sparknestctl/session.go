package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/sparknest-admin/models"
)

type sessionView struct {
	State     string       `json:"state"`
	User      *models.User `json:"user,omitempty"`
	ExpiresAt *time.Time   `json:"expiresAt,omitempty"`
}

func newSessionView(s models.Session) sessionView {
	v := sessionView{State: s.State.String()}
	if s.State == models.Authenticated {
		user := s.User
		v.User = &user
	}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		v.ExpiresAt = &exp
	}
	return v
}

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		Long: `Log in with an administrator account. The password is read from the
first line of standard input when --password is not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				if password, err = readLine(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("read password: %w", err)
				}
			}

			rt, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}

			creds := models.Credentials{Email: strings.TrimSpace(email), Password: password}
			if err := rt.Validator.Validate(cmd.Context(), creds); err != nil {
				return err
			}

			sess, err := rt.Services.Session.Login(cmd.Context(), creds)
			if err != nil {
				return err
			}

			return opts.output(cmd.OutOrStdout(), newSessionView(sess), func() error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s <%s>\n",
					rt.Translator.T("auth.login_success"), sess.User.DisplayName(), sess.User.Email)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}

			if err := rt.Services.Session.Logout(cmd.Context()); err != nil {
				return err
			}

			return opts.output(cmd.OutOrStdout(), newSessionView(rt.Services.Session.Session()), func() error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), rt.Translator.T("auth.logged_out"))
				return err
			})
		},
	}
}

func newWhoamiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}

			sess := rt.Services.Session.Session()
			return opts.output(cmd.OutOrStdout(), newSessionView(sess), func() error {
				w := cmd.OutOrStdout()
				if sess.State != models.Authenticated {
					_, err := fmt.Fprintln(w, rt.Translator.T("auth.anonymous"))
					return err
				}

				fmt.Fprintf(w, "%s <%s>\n", sess.User.DisplayName(), sess.User.Email)
				if !sess.ExpiresAt.IsZero() {
					fmt.Fprintln(w, rt.Translator.T("dashboard.expires", sess.ExpiresAt.Local().Format(time.DateTime)))
				}
				return nil
			})
		},
	}
}

func newRegisterCmd(opts *rootOptions) *cobra.Command {
	var reg models.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if reg.ConfirmPassword == "" {
				reg.ConfirmPassword = reg.Password
			}

			rt, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			if err := rt.Validator.Validate(cmd.Context(), reg); err != nil {
				return err
			}

			message, err := rt.Services.Session.Register(cmd.Context(), reg)
			if err != nil {
				return err
			}
			if message == "" {
				message = rt.Translator.T("auth.register_success")
			}

			return opts.output(cmd.OutOrStdout(), map[string]string{"message": message}, func() error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), message)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&reg.Name, "name", "n", "", "Display name")
	cmd.Flags().StringVarP(&reg.Email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&reg.Password, "password", "p", "", "Account password")
	cmd.Flags().StringVar(&reg.ConfirmPassword, "confirm-password", "", "Password confirmation (defaults to --password)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
