// Command g4scan discovers G-quadruplex candidates in DNA sequences,
// grounded on the teacher's single-binary cmd/ipcr layout.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"g4scan/internal/app"
	"g4scan/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr *os.File) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	root := cli.New(stdout, stderr, version)
	root.SetArgs(argv)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, app.ErrorMessage(err))
		return app.ExitCode(err)
	}
	return 0
}
