// Package channel define el catálogo cerrado de canales de venta y la tabla
// de metadatos (costos por defecto, campos requeridos y códigos de producto)
// que comparte el motor de rentabilidad.
package channel

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
)

// Type identifica un canal de venta. El conjunto es cerrado: agregar un canal
// es agregar una constante aquí y una entrada en channels.yaml.
type Type string

const (
	MercadoLibreClassic Type = "mercadolibre_classic"
	MercadoLibrePremium Type = "mercadolibre_premium"
	AmazonFBA           Type = "amazon_fba"
	AmazonFBM           Type = "amazon_fbm"
	Falabella           Type = "falabella"
	Exito               Type = "exito"
	Rappi               Type = "rappi"
	Dafiti              Type = "dafiti"
	Linio               Type = "linio"
	Shopee              Type = "shopee"
	TikTokShop          Type = "tiktok_shop"
	InstagramShop       Type = "instagram_shop"
	OwnStore            Type = "own_store"
	PhysicalStore       Type = "physical_store"
)

// allTypes orden canónico de presentación.
var allTypes = [...]Type{
	MercadoLibreClassic,
	MercadoLibrePremium,
	AmazonFBA,
	AmazonFBM,
	Falabella,
	Exito,
	Rappi,
	Dafiti,
	Linio,
	Shopee,
	TikTokShop,
	InstagramShop,
	OwnStore,
	PhysicalStore,
}

// Types devuelve todos los canales en orden canónico.
func Types() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes[:])
	return out
}

// Valid indica si t pertenece al conjunto cerrado.
func (t Type) Valid() bool {
	return t.index() >= 0
}

// index posición canónica de t (-1 si no existe).
func (t Type) index() int {
	for i, v := range allTypes {
		if v == t {
			return i
		}
	}
	return -1
}

// Less ordena por posición canónica.
func (t Type) Less(other Type) bool {
	return t.index() < other.index()
}

func (t Type) String() string { return string(t) }

// ParseType convierte la entrada del usuario (path, JSON, CLI) en un Type.
// Un string desconocido es un error de entrada, no un defecto del programa.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownChannel, s)
	}
	return t, nil
}

// Category agrupa canales para la presentación.
type Category string

const (
	CategoryMarketplace Category = "marketplace"
	CategorySocial      Category = "social"
	CategoryOwn         Category = "own"
)

var categoryOrder = [...]Category{CategoryMarketplace, CategorySocial, CategoryOwn}

func (c Category) valid() bool {
	for _, v := range categoryOrder {
		if v == c {
			return true
		}
	}
	return false
}
