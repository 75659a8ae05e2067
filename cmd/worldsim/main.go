// worldsim drives trucks in a World Simulator from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	if dotenvErr := godotenv.Load(); dotenvErr != nil && !os.IsNotExist(dotenvErr) {
		fmt.Fprintf(os.Stderr, "Failed to load .env file! %s\n", dotenvErr.Error())
	}

	shutdownCtx, shutdownRelease := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer shutdownRelease()

	if err := newRootCmd().ExecuteContext(shutdownCtx); err != nil {
		shutdownRelease()
		os.Exit(1)
	}
}
