package web

// Estado is the render state of one page load. Every page starts in
// EstadoCarregando and ends in EstadoPronto or EstadoErro; form
// submissions pass through EstadoEnviando while the store call is in
// flight.
type Estado int

const (
	EstadoCarregando Estado = iota
	EstadoPronto
	EstadoErro
	EstadoEnviando
)

func (e Estado) String() string {
	switch e {
	case EstadoCarregando:
		return "carregando"
	case EstadoPronto:
		return "pronto"
	case EstadoErro:
		return "erro"
	case EstadoEnviando:
		return "enviando"
	default:
		return "desconhecido"
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Titulo string
	Estado Estado
	Erro   string
}

// ComErro reports whether the page ended in the error state.
func (p PageData) ComErro() bool { return p.Estado == EstadoErro }

// Pronto moves the page to the ready state.
func (p *PageData) Pronto() { p.Estado = EstadoPronto }

// Enviando moves the page to the submitting state.
func (p *PageData) Enviando() { p.Estado = EstadoEnviando }

// Falhou moves the page to the error state with a user-facing message.
func (p *PageData) Falhou(mensagem string) {
	p.Estado = EstadoErro
	p.Erro = mensagem
}
