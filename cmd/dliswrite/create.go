package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/dlis/internal/filedesc"
	"github.com/samcharles93/dlis/internal/logger"
	"github.com/samcharles93/dlis/pkg/dlis"
)

func createCmd() *cli.Command {
	var (
		output      string
		chunkRows   int
		outputChunk int
		logLevel    string
	)
	return &cli.Command{
		Name:      "create",
		Usage:     "Write a DLIS file from a YAML/TOML/JSON description",
		ArgsUsage: "<description-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "path of the DLIS file to create",
				Required:    true,
				Destination: &output,
			},
			&cli.IntFlag{
				Name:        "input-chunk-rows",
				Usage:       "number of source rows loaded per chunk (0 = automatic)",
				Destination: &chunkRows,
			},
			&cli.IntFlag{
				Name:        "output-chunk-size",
				Usage:       "output buffer size in bytes (0 = default)",
				Destination: &outputChunk,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "info",
				Usage:       "log level: debug, info, warn, error",
				Destination: &logLevel,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one description file; got %d arguments", cmd.Args().Len())
			}
			log := logger.Pretty(os.Stderr, logger.ParseLevel(logLevel))

			desc, err := filedesc.Load(cmd.Args().First())
			if err != nil {
				return err
			}
			lf, source, err := filedesc.Build(desc, log)
			if err != nil {
				return err
			}

			writeOpts := []dlis.WriteOption{dlis.WithData(source)}
			if chunkRows > 0 {
				writeOpts = append(writeOpts, dlis.WithInputChunkSize(chunkRows))
			}
			if outputChunk > 0 {
				writeOpts = append(writeOpts, dlis.WithOutputChunkSize(outputChunk))
			}

			if err := lf.WriteFile(ctx, output, writeOpts...); err != nil {
				return err
			}
			log.Info("DLIS file created", "path", output)
			return nil
		},
	}
}
