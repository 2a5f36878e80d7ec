package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	userstore "gag-stock-bot/internal/features/user/repository/store"
	"gag-stock-bot/internal/platform/storage"
)

func runUsers(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	users, err := userstore.NewUserRepository(store).List(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROLE\tJOINED")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Role, u.Joined)
	}
	return w.Flush()
}
