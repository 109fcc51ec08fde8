package main

import (
	// Load a local .env so VMM_CONFIG_DIR / VMM_DATA_DIR overrides work
	// without exporting anything.
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	Execute()
}
