package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	migrationFile = regexp.MustCompile(`^(\d+)_.+\.(up|down)\.sql$`)
	migrationName = regexp.MustCompile(`[^a-z0-9]+`)
)

// CreateMigration crea el par up/down con la siguiente secuencia del directorio
// (formato NNNNNN_nombre, el mismo que lee golang-migrate)
func CreateMigration(dir, name string) (string, string, error) {
	slug := strings.Trim(migrationName.ReplaceAllString(strings.ToLower(name), "_"), "_")
	if slug == "" {
		return "", "", fmt.Errorf("invalid migration name %q", name)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("error creating migrations dir: %w", err)
	}

	next, err := nextMigrationVersion(dir)
	if err != nil {
		return "", "", err
	}

	base := fmt.Sprintf("%06d_%s", next, slug)
	up := filepath.Join(dir, base+".up.sql")
	down := filepath.Join(dir, base+".down.sql")
	for _, path := range []string{up, down} {
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return "", "", fmt.Errorf("error writing %s: %w", path, err)
		}
	}

	log.Printf("✅ Migration created: %s", base)
	return up, down, nil
}

func nextMigrationVersion(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("error reading migrations dir: %w", err)
	}

	latest := 0
	for _, entry := range entries {
		match := migrationFile.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		version, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if version > latest {
			latest = version
		}
	}
	return latest + 1, nil
}
