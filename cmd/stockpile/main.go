package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vsinha/stockpile/pkg/interfaces/cli/commands"
)

func main() {
	ctx := context.Background()

	if err := commands.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
