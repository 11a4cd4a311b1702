package main

import (
	"context"
	"os"
	"os/signal"

	"img2pdf/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd.Execute(ctx)
}
