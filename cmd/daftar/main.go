package main

import (
	"context"

	"github.com/faizmokh/daftar/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
