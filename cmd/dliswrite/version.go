package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/dlis/internal/version"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the dliswrite version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(os.Stdout, "dliswrite "+version.String())
			return err
		},
	}
}
