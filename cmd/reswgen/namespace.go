package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reswgen/internal/namespace"
)

func newNamespaceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "namespace <default-namespace>",
		Short: "Show the namespace used for generated code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, strings.Join(namespace.Extract(args[0]), "."))

			if tag, ok := namespace.Locale(args[0]); ok {
				fmt.Fprintf(out, "locale: %s\n", tag)
			}

			return nil
		},
	}
}
