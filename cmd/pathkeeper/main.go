// Command pathkeeper is an example chat-command front end for the
// planning core: a line-oriented reader dispatches "!mine", "!status",
// and "!stop" chat messages to a urfave/cli/v2 app, the way a real bot
// framework would wire its chat listener to this module. It is glue, not
// part of the core (see internal/astar, internal/mining).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Error("pathkeeper: exiting", "err", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	s := newSession()
	app := newApp(s, out)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "!") {
			continue
		}
		args, err := tokenizeChatLine(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if err := app.Run(args); err != nil {
			fmt.Fprintln(out, err)
		}
	}
	return scanner.Err()
}

// tokenizeChatLine turns a chat line like "!mine diamond" into argv form
// ("pathkeeper", "mine", "diamond") for cli.App.Run, which expects
// argv[0] to be the program name.
func tokenizeChatLine(line string) ([]string, error) {
	fields := strings.Fields(strings.TrimPrefix(line, "!"))
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	return append([]string{"pathkeeper"}, fields...), nil
}

func newApp(s *session, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "pathkeeper"
	app.Usage = "chat-driven pathfinding and mining demo"
	app.Writer = out
	app.ErrWriter = out
	app.CommandNotFound = func(ctx *cli.Context, name string) {
		fmt.Fprintf(out, "unknown command %q\n", name)
	}
	app.Commands = []*cli.Command{
		mineCommand(s, out),
		statusCommand(s, out),
		stopCommand(s, out),
	}
	return app
}
