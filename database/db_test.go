package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========================================
// Tests: résolution du chemin
// ========================================

func TestResolve_ExplicitPathWins(t *testing.T) {
	t.Setenv("ZAVA_DB_FILE", "/tmp/env.db")
	assert.Equal(t, "/tmp/flag.db", Resolve("/tmp/flag.db"))
}

func TestResolve_EnvFallback(t *testing.T) {
	t.Setenv("ZAVA_DB_FILE", "/tmp/env.db")
	assert.Equal(t, "/tmp/env.db", Resolve(""))
}

func TestResolve_Default(t *testing.T) {
	t.Setenv("ZAVA_DB_FILE", "")
	assert.Equal(t, DefaultDBFile, Resolve(""))
}

// ========================================
// Tests: cycle de vie de l'artefact
// ========================================

func TestOpenCreateSchemaExistsReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifecycle.db")
	assert.False(t, Exists(path))

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, CreateSchema(db))

	// Idempotent: re-création sans erreur sur un artefact initialisé.
	require.NoError(t, CreateSchema(db))

	// Toutes les tables du schéma sont interrogeables.
	for _, table := range TableNames() {
		var n int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n), table)
		assert.Equal(t, 0, n)
	}
	require.NoError(t, db.Close())

	assert.True(t, Exists(path))
	require.NoError(t, Reset(path))
	assert.False(t, Exists(path))

	// Reset d'un fichier absent: silencieux.
	require.NoError(t, Reset(path))
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, CreateSchema(db))

	_, err = db.Exec(`INSERT INTO stores (store_name, rls_user_id, is_online) VALUES (?, ?, ?)`,
		"Zava Retail Seattle", "11111111-1111-1111-1111-111111111111", true)
	require.NoError(t, err)

	var s Store
	require.NoError(t, db.QueryRow(
		`SELECT store_id, store_name, rls_user_id, is_online FROM stores`).
		Scan(&s.ID, &s.Name, &s.RLSUserID, &s.IsOnline))

	assert.Equal(t, "Zava Retail Seattle", s.Name)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", s.RLSUserID)
	assert.True(t, s.IsOnline)
}

func TestOpen_ForeignKeysEnforced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fk.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, CreateSchema(db))

	// Un client vers un magasin inexistant doit être rejeté.
	_, err = db.Exec(`INSERT INTO customers (first_name, last_name, email, phone, primary_store_id)
		VALUES ('A', 'B', 'a.b.1@example.com', '(200) 200-2000', 999)`)
	require.Error(t, err)
}
