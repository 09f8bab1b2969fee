package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS artefatos (
    id            INTEGER PRIMARY KEY,
    nome          TEXT NOT NULL,
    descricao     TEXT,
    preco         TEXT NOT NULL DEFAULT '0.00',
    categoria     TEXT,
    material      TEXT,
    periodo       TEXT,
    imagem        TEXT,
    destaque      INTEGER NOT NULL DEFAULT 0,
    data_cadastro TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_artefatos_destaque ON artefatos(destaque);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
