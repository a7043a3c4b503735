package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/atm/internal/cli"
	"github.com/dmitrijs2005/atm/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	// stdin reads are not interruptible; close the app here instead of
	// waiting for the REPL to return.
	select {
	case <-done:
	case <-ctx.Done():
		app.Close(context.Background())
		fmt.Println("\nBye!")
	}
}
