package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sadopc/hours/internal/refresh"
	"github.com/sadopc/hours/internal/store"
	"github.com/sadopc/hours/internal/toggl"
)

func newIntegrationsCmd(g *globalFlags) *cobra.Command {
	integrationsCmd := &cobra.Command{
		Use:   "integrations",
		Short: "Manage integrations",
	}

	setupCmd := &cobra.Command{
		Use:   "setup",
		Short: "Set up a new integration",
	}
	setupCmd.AddCommand(&cobra.Command{
		Use:   "toggl",
		Short: "Connect a Toggl Track account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g)
			if err != nil {
				return err
			}
			defer s.Close()
			return setupToggl(cmd, s)
		},
	})

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List enabled integrations",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g)
			if err != nil {
				return err
			}
			defer s.Close()

			integrations, err := s.store.ListIntegrations()
			if err != nil {
				return err
			}
			listIntegrations(cmd.OutOrStdout(), integrations)
			return nil
		},
	}

	integrationsCmd.AddCommand(listCmd)
	integrationsCmd.AddCommand(setupCmd)
	return integrationsCmd
}

func setupToggl(cmd *cobra.Command, s *session) error {
	token := s.cfg.TogglToken
	if token == "" {
		var err error
		if token, err = promptToggl(); err != nil {
			return err
		}
	}

	client := toggl.New(token,
		toggl.WithURLs(s.cfg.TogglAPIURL, s.cfg.TogglReportsURL),
		toggl.WithLogger(s.logger.WithComponent("toggl")),
	)
	ctx := cmd.Context()

	user, err := client.Me(ctx)
	if errors.Is(err, toggl.ErrUnauthorized) {
		return errors.New("toggl rejected the API token")
	}
	if err != nil {
		return err
	}
	workspaces, err := client.Workspaces(ctx)
	if err != nil {
		return err
	}

	in := store.Integration{
		Provider: refresh.ProviderToggl,
		APIKey:   token,
		UserID:   user.ID,
		Fullname: user.Fullname,
		Email:    user.Email,
	}
	for _, w := range workspaces {
		in.Workspaces = append(in.Workspaces, store.Workspace{ID: w.ID, Name: w.Name})
	}
	saved, err := s.store.AddIntegration(in)
	if err != nil {
		return err
	}
	s.logger.Info("integration added", "provider", saved.Provider, "id", saved.ID, "workspaces", len(saved.Workspaces))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleSuccess.Render("New Toggl configuration saved!"))
	fmt.Fprintf(out, "%s %s <%s>, workspaces: %s\n",
		styleLabel.Render("Connected as"), user.Fullname, user.Email, strings.Join(saved.WorkspaceNames(), ", "))
	return nil
}

// listIntegrations prints every integration with its workspaces.
func listIntegrations(w io.Writer, integrations []store.Integration) {
	if len(integrations) == 0 {
		fmt.Fprintln(w, "No integrations set up yet.")
		return
	}
	fmt.Fprintln(w, "Enabled integrations:")
	fmt.Fprintln(w)
	for _, in := range integrations {
		fmt.Fprintf(w, "%s, workspaces: %s\n", providerName(in.Provider), strings.Join(in.WorkspaceNames(), ", "))
	}
}

func providerName(p string) string {
	switch p {
	case refresh.ProviderToggl:
		return "Toggl"
	}
	return p
}
