// Package config loads the .env file into the process environment.
// Packages that read the environment while initializing package-level
// state must import it so the file is loaded first; everything else
// gets it transitively through database.
package config

import (
	"log"

	"github.com/joho/godotenv"
)

func init() {
	Load()
}

// Load pulls .env into the environment when the file is present; real
// deployments set the environment directly. Existing variables are
// never overridden.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}
}
