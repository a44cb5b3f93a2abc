// Package migrations holds the versioned schema migrations for the MongoDB
// database. Every migration registers itself from an init function; the
// runner in the db package applies them in order and records each applied
// version in the migrations collection.
package migrations

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/mongo"
)

// MigrationFunc applies or rolls back a single migration step.
type MigrationFunc func(ctx context.Context, database *mongo.Database) error

// Migration pairs a version number with its up and down steps.
type Migration struct {
	Version int
	Name    string
	Up      MigrationFunc
	Down    MigrationFunc
}

var migrationRegistry = map[int]Migration{}

// AddMigration registers a migration in the global registry
func AddMigration(version int, name string, up, down MigrationFunc) {
	migrationRegistry[version] = Migration{
		Version: version,
		Name:    name,
		Up:      up,
		Down:    down,
	}
}

// DelMigration deregisters a migration in the global registry
func DelMigration(version int) { delete(migrationRegistry, version) }

// SortedByVersionAsc returns all registered migrations, sorted by ascending version
func SortedByVersionAsc() []Migration {
	var migs []Migration
	for _, mig := range migrationRegistry {
		migs = append(migs, mig)
	}
	sort.Slice(migs, func(i, j int) bool { return migs[i].Version < migs[j].Version })
	return migs
}

// AsMap returns the registered migrations keyed by version
func AsMap() map[int]Migration {
	return migrationRegistry
}
