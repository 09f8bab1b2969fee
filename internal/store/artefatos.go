package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acervodigital/acervo/internal/model"
)

// ErrPrecoInvalido is returned when a price does not parse to a
// non-negative fixed-point number.
var ErrPrecoInvalido = fmt.Errorf("preço inválido")

// NormalizarPreco parses a price and reformats it as a fixed-point
// string with 2 decimal digits ("19.999" becomes "20.00").
func NormalizarPreco(preco string) (string, error) {
	d, err := decimal.NewFromString(preco)
	if err != nil {
		return "", ErrPrecoInvalido
	}
	if d.IsNegative() {
		return "", ErrPrecoInvalido
	}
	return d.Round(2).StringFixed(2), nil
}

// CreateArtefato creates a new artifact. The price is normalized to 2
// decimal digits and data_cadastro is assigned from the server clock;
// any value sent by the caller is ignored.
func CreateArtefato(ctx context.Context, db *sql.DB, a model.Artefato) (*model.Artefato, error) {
	preco, err := NormalizarPreco(a.Preco)
	if err != nil {
		return nil, err
	}

	dataCadastro := time.Now().Format("2006-01-02")

	result, err := db.ExecContext(ctx,
		`INSERT INTO artefatos (nome, descricao, preco, categoria, material, periodo, imagem, destaque, data_cadastro)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Nome, a.Descricao, preco, a.Categoria, a.Material, a.Periodo, a.Imagem, a.Destaque, dataCadastro,
	)
	if err != nil {
		return nil, fmt.Errorf("creating artifact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting artifact id: %w", err)
	}

	return GetArtefato(ctx, db, id)
}

// GetArtefato returns an artifact by ID, or nil when it does not exist.
func GetArtefato(ctx context.Context, db *sql.DB, id int64) (*model.Artefato, error) {
	a := &model.Artefato{}
	var descricao, categoria, material, periodo, imagem sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, nome, descricao, preco, categoria, material, periodo, imagem, destaque, data_cadastro
		 FROM artefatos WHERE id = ?`, id,
	).Scan(&a.ID, &a.Nome, &descricao, &a.Preco, &categoria, &material, &periodo, &imagem, &a.Destaque, &a.DataCadastro)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting artifact: %w", err)
	}
	a.Descricao = descricao.String
	a.Categoria = categoria.String
	a.Material = material.String
	a.Periodo = periodo.String
	a.Imagem = imagem.String
	return a, nil
}

// ListArtefatos returns all artifacts ordered by ID.
func ListArtefatos(ctx context.Context, db *sql.DB) ([]model.Artefato, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, nome, descricao, preco, categoria, material, periodo, imagem, destaque, data_cadastro
		 FROM artefatos ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing artifacts: %w", err)
	}
	defer rows.Close()

	var artefatos []model.Artefato
	for rows.Next() {
		var a model.Artefato
		var descricao, categoria, material, periodo, imagem sql.NullString
		if err := rows.Scan(&a.ID, &a.Nome, &descricao, &a.Preco, &categoria, &material, &periodo, &imagem, &a.Destaque, &a.DataCadastro); err != nil {
			return nil, fmt.Errorf("scanning artifact: %w", err)
		}
		a.Descricao = descricao.String
		a.Categoria = categoria.String
		a.Material = material.String
		a.Periodo = periodo.String
		a.Imagem = imagem.String
		artefatos = append(artefatos, a)
	}
	return artefatos, rows.Err()
}

// UpdateArtefato replaces an artifact's fields, keeping its original
// data_cadastro. Returns the updated artifact, or nil when the ID does
// not exist.
func UpdateArtefato(ctx context.Context, db *sql.DB, id int64, a model.Artefato) (*model.Artefato, error) {
	preco, err := NormalizarPreco(a.Preco)
	if err != nil {
		return nil, err
	}

	result, err := db.ExecContext(ctx,
		`UPDATE artefatos SET nome = ?, descricao = ?, preco = ?, categoria = ?, material = ?, periodo = ?, imagem = ?, destaque = ?
		 WHERE id = ?`,
		a.Nome, a.Descricao, preco, a.Categoria, a.Material, a.Periodo, a.Imagem, a.Destaque, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating artifact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return GetArtefato(ctx, db, id)
}

// DeleteArtefato removes an artifact. Returns false when the ID does
// not exist.
func DeleteArtefato(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM artefatos WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting artifact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking delete result: %w", err)
	}
	return affected > 0, nil
}

// SetArtefatoImagem updates only the image filename of an artifact.
func SetArtefatoImagem(ctx context.Context, db *sql.DB, id int64, imagem string) error {
	_, err := db.ExecContext(ctx, `UPDATE artefatos SET imagem = ? WHERE id = ?`, imagem, id)
	if err != nil {
		return fmt.Errorf("setting artifact image: %w", err)
	}
	return nil
}
