// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

// Command blz-compress reads a file, BLZ-compresses it, and writes the
// result to a second file.
package main

import (
	"fmt"
	"os"

	"github.com/nhaarman/blz"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "blz-compress",
		Usage:     "compress a file with the reverse-order LZSS BLZ codec",
		ArgsUsage: "<input> <output>",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "blz-compress:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return cli.Exit("expected exactly two arguments: <input> <output>", 2)
	}

	raw, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return err
	}

	out := make([]byte, blz.WorstCaseCompressedSize(len(raw)))
	n, err := blz.Compress(raw, out)
	if err != nil {
		return err
	}

	return os.WriteFile(c.Args().Get(1), out[:n], 0o644)
}
