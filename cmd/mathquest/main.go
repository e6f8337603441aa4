package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mathquest/app/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}
