package main

import (
	"context"
	"fmt"
	"os"
)

type lifecycle interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
}

func run(ctx context.Context, app lifecycle) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("failed to stop application: %w", err)
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
