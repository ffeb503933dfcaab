package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yungbote/neurobridge-lms/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	a, err := app.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init app: %v\n", err)
		return 1
	}
	defer a.Close()

	a.Start()
	if err := a.Run(ctx); err != nil {
		a.Log.Error("Server exited", "error", err)
		return 1
	}
	a.Log.Info("Server stopped")
	return 0
}
