package classify

import "github.com/heartmarshall/ecoponto-backend/internal/domain"

// defaultSynonyms maps common classifier labels (Portuguese and English) to
// the category name they belong to.
var defaultSynonyms = map[string]string{
	"pet":                "Plástico",
	"garrafa pet":        "Plástico",
	"plastic":            "Plástico",
	"plastic bottle":     "Plástico",
	"sacola":             "Plástico",
	"sacola plástica":    "Plástico",
	"embalagem plástica": "Plástico",
	"paper":              "Papel",
	"papelão":            "Papel",
	"cardboard":          "Papel",
	"jornal":             "Papel",
	"newspaper":          "Papel",
	"caixa de papelão":   "Papel",
	"glass":              "Vidro",
	"glass bottle":       "Vidro",
	"garrafa de vidro":   "Vidro",
	"pote de vidro":      "Vidro",
	"can":                "Metal",
	"lata":               "Metal",
	"aluminum can":       "Metal",
	"lata de alumínio":   "Metal",
	"alumínio":           "Metal",
	"battery":            "Pilhas e Baterias",
	"batteries":          "Pilhas e Baterias",
	"pilha":              "Pilhas e Baterias",
	"bateria":            "Pilhas e Baterias",
	"cooking oil":        "Óleo de Cozinha",
	"óleo":               "Óleo de Cozinha",
	"electronics":        "Eletrônicos",
	"celular":            "Eletrônicos",
	"mobile phone":       "Eletrônicos",
	"computer":           "Eletrônicos",
	"lixo eletrônico":    "Eletrônicos",
	"food":               "Orgânico",
	"food waste":         "Orgânico",
	"casca de fruta":     "Orgânico",
	"restos de comida":   "Orgânico",
}

func normalizedSynonyms(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for label, category := range in {
		out[domain.NormalizeLabel(label)] = domain.NormalizeLabel(category)
	}
	return out
}
