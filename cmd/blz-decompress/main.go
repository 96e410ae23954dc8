// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

// Command blz-decompress reads a BLZ-compressed file and writes the
// reconstructed original to a second file.
package main

import (
	"fmt"
	"os"

	"github.com/nhaarman/blz"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "blz-decompress",
		Usage:     "decompress a file produced by the reverse-order LZSS BLZ codec",
		ArgsUsage: "<input> <output>",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "blz-decompress:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return cli.Exit("expected exactly two arguments: <input> <output>", 2)
	}

	compressed, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return err
	}

	size, err := blz.DecompressedSize(compressed)
	if err != nil {
		return err
	}

	out := make([]byte, size)
	n, err := blz.Decompress(compressed, out)
	if err != nil {
		return err
	}

	return os.WriteFile(c.Args().Get(1), out[:n], 0o644)
}
