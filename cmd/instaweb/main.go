package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"instaweb/cmd/instaweb/commands"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	os.Exit(commands.ExecuteContext(ctx))
}
