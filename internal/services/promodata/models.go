package promodata

import "encoding/json"

// Product is a supplier catalog record as returned by the Promodata API.
type Product struct {
	Code            string       `json:"code"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	DescriptionHTML string       `json:"description_html"`
	Category        string       `json:"supplier_category"`
	Supplier        string       `json:"supplier"`
	Images          []Image      `json:"images"`
	PriceGroups     []PriceGroup `json:"price_groups"`
	Variants        []Variant    `json:"variants"`
}

// Image accepts either a bare URL string or an object carrying one; the feed
// mixes both forms.
type Image struct {
	URL string
}

func (i *Image) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		i.URL = s
		return nil
	}

	var obj struct {
		URL string `json:"url"`
		Src string `json:"src"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.URL != "" {
		i.URL = obj.URL
	} else {
		i.URL = obj.Src
	}
	return nil
}

func (i Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.URL)
}

type PriceGroup struct {
	Description string       `json:"description"`
	PriceBreaks []PriceBreak `json:"price_breaks"`
}

type PriceBreak struct {
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Variant is a supplier-side SKU differing by attribute values. Attributes
// are an ordered list so first-seen order survives the round trip.
type Variant struct {
	Code        string             `json:"code"`
	Attributes  []VariantAttribute `json:"attributes"`
	PriceGroups []PriceGroup       `json:"price_groups"`
}

type VariantAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// BasePrice returns the first price break of the first price group, the
// supplier's single-unit price convention, or 0 when absent entirely.
func BasePrice(groups []PriceGroup) float64 {
	if len(groups) == 0 || len(groups[0].PriceBreaks) == 0 {
		return 0
	}
	return groups[0].PriceBreaks[0].Price
}

// BasePrice returns the variant's own base price, falling back through the
// same convention as the parent product.
func (v Variant) BasePrice() float64 {
	return BasePrice(v.PriceGroups)
}
