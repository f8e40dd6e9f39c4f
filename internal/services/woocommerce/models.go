package woocommerce

const (
	ProductTypeSimple   = "simple"
	ProductTypeVariable = "variable"
)

// Product is the payload for the WooCommerce product create endpoint.
type Product struct {
	Name             string      `json:"name"`
	Type             string      `json:"type"`
	SKU              string      `json:"sku"`
	RegularPrice     string      `json:"regular_price,omitempty"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"short_description"`
	Images           []Image     `json:"images,omitempty"`
	Categories       []Category  `json:"categories,omitempty"`
	Attributes       []Attribute `json:"attributes,omitempty"`
}

type Image struct {
	Src string `json:"src"`
}

type Category struct {
	Name string `json:"name"`
}

// Attribute describes one attribute dimension of a variable product and the
// options observed across its variations.
type Attribute struct {
	Name      string   `json:"name"`
	Position  int      `json:"position"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"`
	Options   []string `json:"options"`
}

// Variation is one entry of a variations batch-create request.
type Variation struct {
	SKU          string               `json:"sku"`
	RegularPrice string               `json:"regular_price"`
	Attributes   []VariationAttribute `json:"attributes"`
}

type VariationAttribute struct {
	Name   string `json:"name"`
	Option string `json:"option"`
}

// CreatedProduct is the slice of the create response the sync loop needs: the
// parent id that scopes the variations batch call.
type CreatedProduct struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	SKU  string `json:"sku"`
}
