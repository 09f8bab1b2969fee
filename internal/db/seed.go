package db

import (
	"database/sql"
	"fmt"
)

// seedRows are the starter pieces inserted into an empty catalog so the
// listing, carousel and dashboard have something to show on first run.
var seedRows = []struct {
	nome, descricao, preco, categoria, material, periodo, imagem, data string
	destaque                                                           bool
}{
	{
		nome:      "Vaso Cerimonial Marajoara",
		descricao: "Vaso de cerâmica policromada com motivos geométricos, típico da fase Marajoara da ilha de Marajó. Peça restaurada, com pequenas perdas na borda.",
		preco:     "4850.00", categoria: "Cerâmica", material: "Cerâmica e pigmento mineral",
		periodo: "Século XII", imagem: "vaso_marajoara.jpg", data: "2024-03-11", destaque: true,
	},
	{
		nome:      "Moeda de 960 Réis",
		descricao: "Moeda de prata cunhada sobre peça espanhola de 8 reales, circulou no Brasil colonial.",
		preco:     "1200.00", categoria: "Numismática", material: "Prata",
		periodo: "1810", imagem: "moeda_960_reis.jpg", data: "2024-03-11", destaque: false,
	},
	{
		nome:      "Oratório Mineiro",
		descricao: "Oratório de viagem em madeira policromada com porta dupla, produção das oficinas de Minas Gerais.",
		preco:     "9300.00", categoria: "Arte sacra", material: "Madeira, folha de ouro e pigmento",
		periodo: "Século XVIII", imagem: "oratorio_mineiro.jpg", data: "2024-04-02", destaque: true,
	},
	{
		nome:      "Machado Lítico Polido",
		descricao: "Lâmina de machado em pedra polida com sulco de encabamento, procedência do vale do Ribeira.",
		preco:     "760.00", categoria: "Lítico", material: "Pedra",
		periodo: "Desconhecido", imagem: "machado_litico.jpg", data: "2024-05-20", destaque: false,
	},
}

// Seed inserts the starter rows when the artefatos table is empty.
// Returns the number of rows inserted (0 when the catalog already has data).
func Seed(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM artefatos`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting artifacts: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, r := range seedRows {
		_, err := db.Exec(
			`INSERT INTO artefatos (nome, descricao, preco, categoria, material, periodo, imagem, destaque, data_cadastro)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.nome, r.descricao, r.preco, r.categoria, r.material, r.periodo, r.imagem, r.destaque, r.data,
		)
		if err != nil {
			return 0, fmt.Errorf("seeding artifact %q: %w", r.nome, err)
		}
	}
	return len(seedRows), nil
}
