package format

import "testing"

func TestSeculoDoPeriodo(t *testing.T) {
	tests := []struct {
		periodo string
		want    string
	}{
		{"Século XV", "Século XV"},
		{"século xv", "Século XV"},
		{"Século XVIII, Minas Gerais", "Século XVIII"},
		{"1823", "Século 19"},
		{"por volta de 1601", "Século 17"},
		{"1800", "Século 18"},
		{"mystery era", "Desconhecido"},
		{"", "Desconhecido"},
		{"150 a.C.", "Desconhecido"},
		{"Século de ouro", "Século de ouro"},
	}
	for _, tt := range tests {
		if got := SeculoDoPeriodo(tt.periodo); got != tt.want {
			t.Errorf("SeculoDoPeriodo(%q) = %q, want %q", tt.periodo, got, tt.want)
		}
	}
}

func TestNumeroDoSeculo(t *testing.T) {
	tests := []struct {
		rotulo string
		want   int
	}{
		{"Século 19", 19},
		{"Século 7", 7},
		{"Século XV", 0},
		{"Desconhecido", 0},
	}
	for _, tt := range tests {
		if got := NumeroDoSeculo(tt.rotulo); got != tt.want {
			t.Errorf("NumeroDoSeculo(%q) = %d, want %d", tt.rotulo, got, tt.want)
		}
	}
}
