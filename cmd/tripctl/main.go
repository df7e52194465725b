package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/planmytrip/tripstore/internal/cli"
)

func main() {
	cli.Execute()
}
