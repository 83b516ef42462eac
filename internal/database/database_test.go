package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsFS_Paired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}

	for _, e := range entries {
		name := e.Name()

		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected migration file %s", name)
		}
	}

	assert.Equal(t, ups, downs)
}

func TestMigrationsFS_CreatesTables(t *testing.T) {
	data, err := fs.ReadFile(migrationsFS, "migrations/000001_create_contracts.up.sql")
	require.NoError(t, err)

	sql := string(data)
	for _, table := range []string{"contracts", "contract_clins", "contract_modifications", "contract_deliverables"} {
		assert.Contains(t, sql, "CREATE TABLE "+table+" (")
	}
}
