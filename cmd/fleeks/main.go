package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A .env in the working directory supplies FLEEKS_API_KEY during
	// local development.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
