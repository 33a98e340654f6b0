package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "Path to config file (discovered when empty)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("reelayd %s\n", version)
		os.Exit(0)
	}

	_ = godotenv.Load() // loads .env into environment variables (safe to ignore error)

	if err := runServer(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
