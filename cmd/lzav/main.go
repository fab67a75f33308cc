// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

// Command lzav compresses and decompresses files using the LZAV format.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/urfave/cli/v2"

	"github.com/ryancinsight/rlzav"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := &cli.App{
		Name:  "lzav",
		Usage: "compress and decompress data with the LZAV format",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a .lzavrc.toml config file"},
		},
		Commands: []*cli.Command{
			compressCommand(logger),
			decompressCommand(logger),
			boundCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("lzav failed", "err", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*lzav.CLIConfig, error) {
	return lzav.LoadCLIConfig(c.String("config"))
}

func compressCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "compress",
		Usage: "compress a file",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "hi", Usage: "use the high-ratio compressor"},
			&cli.StringFlag{Name: "in", Required: true, Usage: "input file path"},
			&cli.StringFlag{Name: "out", Required: true, Usage: "output file path"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			mode := lzav.ModeDefault
			if c.Bool("hi") || cfg.Hi {
				mode = lzav.ModeHi
			}

			src, err := os.ReadFile(c.String("in"))
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			out, err := lzav.Compress(src, &lzav.CompressOptions{Mode: mode})
			if err != nil {
				return fmt.Errorf("compressing: %w", err)
			}

			if err := os.WriteFile(c.String("out"), out, 0o644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

			logger.Info("compressed",
				"in", c.String("in"), "out", c.String("out"),
				"src_bytes", len(src), "dst_bytes", len(out),
				"mode", mode, "digest", xxhash.Sum64(src))
			return nil
		},
	}
}

func decompressCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "decompress",
		Usage: "decompress a file",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "len", Required: true, Usage: "exact original uncompressed length"},
			&cli.StringFlag{Name: "in", Required: true, Usage: "input file path"},
			&cli.StringFlag{Name: "out", Required: true, Usage: "output file path"},
		},
		Action: func(c *cli.Context) error {
			src, err := os.ReadFile(c.String("in"))
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			out, err := lzav.Decompress(src, lzav.DefaultDecompressOptions(c.Int("len")))
			if err != nil {
				return fmt.Errorf("decompressing: %w", err)
			}

			if err := os.WriteFile(c.String("out"), out, 0o644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

			logger.Info("decompressed",
				"in", c.String("in"), "out", c.String("out"),
				"bytes", len(out), "digest", xxhash.Sum64(out))
			return nil
		},
	}
}

func boundCommand() *cli.Command {
	return &cli.Command{
		Name:  "bound",
		Usage: "print the worst-case compressed size for a given input size",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "hi", Usage: "use the high-ratio compressor's bound"},
			&cli.IntFlag{Name: "size", Required: true, Usage: "uncompressed input size"},
		},
		Action: func(c *cli.Context) error {
			size := c.Int("size")
			if c.Bool("hi") {
				fmt.Println(lzav.CompressBoundHi(size))
				return nil
			}
			fmt.Println(lzav.CompressBound(size))
			return nil
		},
	}
}
