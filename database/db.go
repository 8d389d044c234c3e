package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultDBFile est l'emplacement par défaut de l'artefact SQLite.
// Peut être surchargé via la variable d'environnement ZAVA_DB_FILE.
const DefaultDBFile = "retail.db"

// Resolve retourne le chemin de l'artefact: priorité au paramètre explicite,
// puis à ZAVA_DB_FILE, puis à la valeur par défaut.
func Resolve(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv("ZAVA_DB_FILE"); env != "" {
		return env
	}
	return DefaultDBFile
}

// Open ouvre (ou crée) l'artefact SQLite avec les clés étrangères activées.
// Le pipeline est mono-écrivain: une seule connexion suffit et évite les
// verrous SQLITE_BUSY entre étapes.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("erreur ouverture SQLite %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("erreur connexion SQLite %s: %w", path, err)
	}

	return db, nil
}

// Reset supprime un artefact existant. Une régénération repart toujours
// d'un fichier vide: un artefact issu d'une exécution échouée est invalide.
func Reset(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("erreur suppression artefact %s: %w", path, err)
	}
	return nil
}

// Exists indique si l'artefact est présent sur disque.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
