package channel

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

//go:embed channels.yaml
var defaultTable []byte

// Metadata describe un tipo de canal: nombre visible, categoría, costos por
// defecto, campos obligatorios y códigos de producto propios del canal.
type Metadata struct {
	Type              Type
	DisplayName       string
	Category          Category
	DefaultCosts      CostData
	RequiredFields    []CostField
	ProductCodeFields []string
}

// NewCostData devuelve los costos por defecto listos para un canal recién
// aprovisionado, con los códigos de producto del canal vacíos.
func (m Metadata) NewCostData() CostData {
	data := m.DefaultCosts.Clone()
	data.ProductCodes = make(map[string]string, len(m.ProductCodeFields))
	for _, f := range m.ProductCodeFields {
		data.ProductCodes[f] = ""
	}
	return data
}

// HasProductCodeField indica si name es un código de producto admitido por el canal.
func (m Metadata) HasProductCodeField(name string) bool {
	for _, f := range m.ProductCodeFields {
		if f == name {
			return true
		}
	}
	return false
}

func (m Metadata) clone() Metadata {
	out := m
	out.DefaultCosts = m.DefaultCosts.Clone()
	out.RequiredFields = append([]CostField(nil), m.RequiredFields...)
	out.ProductCodeFields = append([]string(nil), m.ProductCodeFields...)
	return out
}

// Group canales de una categoría, en orden canónico.
type Group struct {
	Category Category
	Types    []Type
}

// Registry tabla de metadatos de solo lectura. Se construye una vez al arrancar
// y se inyecta en el motor y en los casos de uso.
type Registry struct {
	byType map[Type]Metadata
}

type tableFile struct {
	Channels []tableEntry `yaml:"channels"`
}

type tableEntry struct {
	Type              string             `yaml:"type"`
	DisplayName       string             `yaml:"display_name"`
	Category          string             `yaml:"category"`
	DefaultCosts      map[string]float64 `yaml:"default_costs"`
	RequiredFields    []string           `yaml:"required_fields"`
	ProductCodeFields []string           `yaml:"product_code_fields"`
}

// LoadRegistry parsea y valida la tabla YAML. Cada tipo del conjunto cerrado
// debe aparecer exactamente una vez.
func LoadRegistry(data []byte) (*Registry, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("registry: parse yaml: %w", err)
	}

	r := &Registry{byType: make(map[Type]Metadata, len(allTypes))}
	var errs []error
	for i, e := range file.Channels {
		meta, err := e.toMetadata()
		if err != nil {
			errs = append(errs, fmt.Errorf("entrada %d (%s): %w", i, e.Type, err))
			continue
		}
		if _, dup := r.byType[meta.Type]; dup {
			errs = append(errs, fmt.Errorf("entrada %d: tipo %q duplicado", i, meta.Type))
			continue
		}
		r.byType[meta.Type] = meta
	}
	for _, t := range allTypes {
		if _, ok := r.byType[t]; !ok {
			errs = append(errs, fmt.Errorf("tipo %q sin metadatos", t))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("registry: tabla inválida: %w", errors.Join(errs...))
	}
	return r, nil
}

// MustLoadDefault carga la tabla embebida. Una tabla inválida es un defecto
// de compilación, por eso entra en pánico.
func MustLoadDefault() *Registry {
	r, err := LoadRegistry(defaultTable)
	if err != nil {
		panic(err)
	}
	return r
}

func (e tableEntry) toMetadata() (Metadata, error) {
	t := Type(e.Type)
	if !t.Valid() {
		return Metadata{}, fmt.Errorf("tipo desconocido %q", e.Type)
	}
	cat := Category(e.Category)
	if !cat.valid() {
		return Metadata{}, fmt.Errorf("categoría desconocida %q", e.Category)
	}
	if e.DisplayName == "" {
		return Metadata{}, errors.New("display_name vacío")
	}

	var costs CostData
	for name, v := range e.DefaultCosts {
		if err := costs.Set(CostField(name), decimal.NewFromFloat(v)); err != nil {
			return Metadata{}, err
		}
	}
	if err := costs.CommissionRules().Check(); err != nil {
		return Metadata{}, err
	}

	required := make([]CostField, 0, len(e.RequiredFields))
	for _, name := range e.RequiredFields {
		f := CostField(name)
		if !f.Valid() {
			return Metadata{}, fmt.Errorf("campo requerido desconocido %q", name)
		}
		required = append(required, f)
	}

	return Metadata{
		Type:              t,
		DisplayName:       e.DisplayName,
		Category:          cat,
		DefaultCosts:      costs,
		RequiredFields:    required,
		ProductCodeFields: append([]string(nil), e.ProductCodeFields...),
	}, nil
}

// Get devuelve los metadatos de t. Un tipo fuera del conjunto cerrado indica
// un defecto en el código llamador y provoca pánico.
func (r *Registry) Get(t Type) Metadata {
	meta, ok := r.byType[t]
	if !ok {
		panic(fmt.Sprintf("channel: tipo de canal desconocido %q", string(t)))
	}
	return meta.clone()
}

// All devuelve los tipos agrupados por categoría (marketplace, social, propio).
func (r *Registry) All() []Group {
	groups := make([]Group, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		g := Group{Category: cat}
		for _, t := range allTypes {
			if r.byType[t].Category == cat {
				g.Types = append(g.Types, t)
			}
		}
		if len(g.Types) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}
