package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tunopen/tunopen/pkg/cli"
	"github.com/tunopen/tunopen/pkg/config"
)

func main() {
	ctx, err := config.LoadEnv(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "tunopen: error: %v\n", err)
		os.Exit(1)
	}

	cmd := cli.Command(ctx)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: error: %v\n", cmd.CommandPath(), err)
		os.Exit(1)
	}
}
