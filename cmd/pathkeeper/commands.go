package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"
)

// mineCommand implements "!mine <type>": starts a mining process for the
// named block and reports the outcome of the first scan-and-plan cycle.
func mineCommand(s *session, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "mine",
		Usage:     "start mining the named block type",
		ArgsUsage: "<block-type>",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() == 0 {
				fmt.Fprintln(out, "usage: !mine <block-type>")
				return nil
			}
			fmt.Fprintln(out, s.mine(strings.Join(ctx.Args().Slice(), " ")))
			return nil
		},
	}
}

// statusCommand implements "!status": reports the active mining
// process's progress.
func statusCommand(s *session, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "report the active mining process's progress",
		Action: func(ctx *cli.Context) error {
			fmt.Fprintln(out, s.status())
			return nil
		},
	}
}

// stopCommand implements "!stop": halts the active mining process.
func stopCommand(s *session, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "stop",
		Usage: "stop the active mining process",
		Action: func(ctx *cli.Context) error {
			fmt.Fprintln(out, s.stop())
			return nil
		},
	}
}
