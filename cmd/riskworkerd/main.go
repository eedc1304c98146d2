package main

import (
	"context"
	"os"

	"github.com/AaronStockburger/job-worker/internal/presentation/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
