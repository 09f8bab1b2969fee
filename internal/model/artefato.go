package model

// Artefato represents a catalog piece with descriptive and commercial
// metadata. JSON field names follow the original collection format
// (nome, descricao, preco, ...).
//
// Preco is kept as a fixed-point string with 2 decimal digits on the
// wire (e.g. "1234.50"). DataCadastro is an ISO date (YYYY-MM-DD),
// assigned once at creation and never changed afterwards.
type Artefato struct {
	ID           int64  `json:"id"`
	Nome         string `json:"nome"`
	Descricao    string `json:"descricao,omitempty"`
	Preco        string `json:"preco"`
	Categoria    string `json:"categoria,omitempty"`
	Material     string `json:"material,omitempty"`
	Periodo      string `json:"periodo,omitempty"`
	Imagem       string `json:"imagem,omitempty"`
	Destaque     bool   `json:"destaque"`
	DataCadastro string `json:"data_cadastro,omitempty"`
}

// CategoriaPadrao is the label used when an artifact has no category.
const CategoriaPadrao = "Sem categoria"
