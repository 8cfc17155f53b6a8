// seed_channels genera el script SQL que puebla channel_types a partir de la
// tabla de canales embebida (internal/domain/channel/channels.yaml).
//
// Uso: go run ./cmd/seed_channels
// Escribe: internal/infrastructure/postgres/migrations/002_seed_channel_types.sql
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
)

func main() {
	registry := channel.MustLoadDefault()

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_channel_types.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	n, err := writeSeed(out, registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d canales\n", outPath, n)
}

// writeSeed escribe un único INSERT idempotente en orden canónico.
func writeSeed(w io.Writer, registry *channel.Registry) (int, error) {
	var b strings.Builder
	b.WriteString("-- Tipos de canal de venta (orden canónico)\n")
	b.WriteString("-- Generado por cmd/seed_channels desde channels.yaml\n\n")
	b.WriteString("INSERT INTO channel_types (type, display_name, category, position) VALUES\n")

	types := channel.Types()
	for i, t := range types {
		meta := registry.Get(t)
		sep := ","
		if i == len(types)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', %d)%s\n",
			escapeSQL(string(t)), escapeSQL(meta.DisplayName), escapeSQL(string(meta.Category)), i+1, sep)
	}
	b.WriteString("ON CONFLICT (type) DO UPDATE SET\n")
	b.WriteString("  display_name = EXCLUDED.display_name,\n")
	b.WriteString("  category = EXCLUDED.category,\n")
	b.WriteString("  position = EXCLUDED.position;\n")

	_, err := io.WriteString(w, b.String())
	return len(types), err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
