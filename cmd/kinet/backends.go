package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/kinet/backend"
)

func newBackendsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List numeric drivers and the one auto selects",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			detected := backend.Detect()
			fmt.Fprintln(a.out, backend.Describe())
			for _, k := range backend.Kinds() {
				if k == backend.Auto {
					continue
				}
				marker := " "
				if k == detected {
					marker = "*"
				}
				fmt.Fprintf(a.out, "%s %s\n", marker, k)
			}
			return nil
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.out, "kinet %s\n", version)
		},
	}
}
