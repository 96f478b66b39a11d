// Regenerates the JSON schema for the feedpulse config file. The output is
// committed as pkg/config/schema.json and embedded there so a loaded config
// can be verified against the schema it was generated from.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/feedpulse/feedpulse/pkg/config"
)

func main() {
	out := "pkg/config/schema.json"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("generate schema: %v", err)
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("marshal schema: %v", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(out, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("write %s: %v", out, err)
	}
	fmt.Printf("schema written to %s\n", out)
}
