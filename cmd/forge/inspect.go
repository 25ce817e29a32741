package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	itemsrepo "github.com/KirkDiggler/rpg-forge/internal/repositories/items"
)

var inspectOwner string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List persisted items of an owner",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectOwner, "owner", "player", "owner id")
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo, closeRepo, err := openRepository(ctx, false)
	if err != nil {
		return err
	}
	defer closeRepo()

	return printOwned(ctx, cmd.OutOrStdout(), repo, inspectOwner)
}

func printOwned(ctx context.Context, out io.Writer, repo itemsrepo.Repository, owner string) error {
	listed, err := repo.ListByOwner(ctx, itemsrepo.ListByOwnerInput{OwnerID: owner})
	if err != nil {
		return err
	}

	if len(listed.Snapshots) == 0 {
		fmt.Fprintf(out, "%s has no items\n", owner)
		return nil
	}
	for _, snapshot := range listed.Snapshots {
		printSnapshot(out, snapshot)
	}
	return nil
}
