package woocommerce

import (
	"promosync/internal/models"
	"promosync/internal/pricing"
	"promosync/internal/services/promodata"
)

type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// Build converts a supplier catalog record into a WooCommerce product payload
// plus its variation payloads. A product with two or more variants becomes a
// variable product; zero or one variant means simple.
func (t *Transformer) Build(p *promodata.Product, rules models.RuleSet) (*Product, []Variation) {
	product := &Product{
		Name:             p.Name,
		Type:             ProductTypeSimple,
		SKU:              p.Code,
		Description:      description(p),
		ShortDescription: "",
		Images:           images(p),
	}

	if p.Category != "" {
		product.Categories = []Category{{Name: p.Category}}
	}

	if len(p.Variants) < 2 {
		margin := pricing.ApplicableMargin(p.Category, p.Supplier, rules)
		product.RegularPrice = pricing.Apply(promodata.BasePrice(p.PriceGroups), margin)
		return product, nil
	}

	product.Type = ProductTypeVariable
	product.Attributes = attributes(p.Variants)

	variations := make([]Variation, 0, len(p.Variants))
	for _, v := range p.Variants {
		// Margin is evaluated per variant, but always against the parent
		// product's classification fields.
		margin := pricing.ApplicableMargin(p.Category, p.Supplier, rules)

		attrs := make([]VariationAttribute, 0, len(v.Attributes))
		for _, a := range v.Attributes {
			attrs = append(attrs, VariationAttribute{Name: a.Name, Option: a.Value})
		}

		variations = append(variations, Variation{
			SKU:          v.Code,
			RegularPrice: pricing.Apply(v.BasePrice(), margin),
			Attributes:   attrs,
		})
	}

	return product, variations
}

// description prefers the rich HTML description and falls back to plain text.
func description(p *promodata.Product) string {
	if p.DescriptionHTML != "" {
		return p.DescriptionHTML
	}
	return p.Description
}

func images(p *promodata.Product) []Image {
	if len(p.Images) == 0 {
		return nil
	}
	out := make([]Image, 0, len(p.Images))
	for _, img := range p.Images {
		out = append(out, Image{Src: img.URL})
	}
	return out
}

// attributes collects the union of attribute names across all variants in
// first-seen order, each carrying its distinct option values, also in
// first-seen order.
func attributes(variants []promodata.Variant) []Attribute {
	var names []string
	options := map[string][]string{}
	seen := map[string]map[string]bool{}

	for _, v := range variants {
		for _, a := range v.Attributes {
			if seen[a.Name] == nil {
				names = append(names, a.Name)
				seen[a.Name] = map[string]bool{}
			}
			if !seen[a.Name][a.Value] {
				seen[a.Name][a.Value] = true
				options[a.Name] = append(options[a.Name], a.Value)
			}
		}
	}

	attrs := make([]Attribute, 0, len(names))
	for i, name := range names {
		attrs = append(attrs, Attribute{
			Name:      name,
			Position:  i,
			Visible:   true,
			Variation: true,
			Options:   options[name],
		})
	}
	return attrs
}
