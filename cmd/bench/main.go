package main

import (
	"log"

	"github.com/joho/godotenv"

	"creativity-bench/internal/cli"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	cli.Execute()
}
