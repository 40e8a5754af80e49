package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edumarques81/stellar-mediaadapter/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetInfo().String())
		},
	}
}
