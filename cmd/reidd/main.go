// Command reidd runs the person re-identification tracking backend.
//
// Configuration is read from CONFIG_PATH (YAML) with environment variable
// overrides; see internal/config.
package main

import (
	"context"
	"log"

	"github.com/imespro/reid-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
