package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"blogapi/app/auth"
	"blogapi/config"
	"blogapi/routes"

	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogapi version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogapi <command>
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the blog REST API server.
`
	fmt.Println(helpText)
}

// serve opens the Badger store and runs the HTTP API.
func serve() {
	cfg := config.MustLoad()

	opts := badger.DefaultOptions(cfg.Badger.Path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL, cfg.JWT.RefreshWindow)
	router := routes.SetupRoutes(db, tokens)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("Starting blog API on %s", addr)
	if err := routes.StartServer(addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
