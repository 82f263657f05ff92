package main

import (
	"context"
	"os"

	"github.com/itssimple/manifest-report-site/internal/cli"
)

func main() {
	ctx := context.Background()

	if err := cli.Execute(ctx, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
