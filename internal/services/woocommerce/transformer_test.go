package woocommerce

import (
	"encoding/json"
	"testing"

	"promosync/internal/models"
	"promosync/internal/services/promodata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRules() models.RuleSet {
	return models.RuleSet{DefaultMargin: 30}
}

func TestBuild_SimpleProduct(t *testing.T) {
	p := &promodata.Product{
		Code:            "PEN-001",
		Name:            "Stylo Pen",
		Description:     "plain text",
		DescriptionHTML: "<p>rich</p>",
		Category:        "Pens",
		Supplier:        "Acme",
		Images: []promodata.Image{
			{URL: "https://img.example.com/a.jpg"},
		},
		PriceGroups: []promodata.PriceGroup{
			{PriceBreaks: []promodata.PriceBreak{{Qty: 1, Price: 10}, {Qty: 100, Price: 8}}},
		},
	}

	product, variations := NewTransformer().Build(p, defaultRules())

	assert.Empty(t, variations)
	assert.Equal(t, ProductTypeSimple, product.Type)
	assert.Equal(t, "Stylo Pen", product.Name)
	assert.Equal(t, "PEN-001", product.SKU)
	assert.Equal(t, "<p>rich</p>", product.Description)
	assert.Equal(t, "", product.ShortDescription)
	assert.Equal(t, "13.00", product.RegularPrice)
	assert.Equal(t, []Image{{Src: "https://img.example.com/a.jpg"}}, product.Images)
	assert.Equal(t, []Category{{Name: "Pens"}}, product.Categories)
}

func TestBuild_DescriptionFallsBackToPlain(t *testing.T) {
	p := &promodata.Product{Code: "X", Name: "X", Description: "plain only"}

	product, _ := NewTransformer().Build(p, defaultRules())

	assert.Equal(t, "plain only", product.Description)
}

func TestBuild_NoCategoryOmitted(t *testing.T) {
	p := &promodata.Product{Code: "X", Name: "X"}

	product, _ := NewTransformer().Build(p, defaultRules())

	assert.Nil(t, product.Categories)
}

func TestBuild_MissingPricesDefaultToZero(t *testing.T) {
	p := &promodata.Product{Code: "X", Name: "X"}

	product, _ := NewTransformer().Build(p, defaultRules())

	assert.Equal(t, "0.00", product.RegularPrice)
}

func TestBuild_SingleVariantIsSimple(t *testing.T) {
	p := &promodata.Product{
		Code: "PEN-001",
		Name: "Stylo Pen",
		PriceGroups: []promodata.PriceGroup{
			{PriceBreaks: []promodata.PriceBreak{{Qty: 1, Price: 10}}},
		},
		Variants: []promodata.Variant{
			{Code: "PEN-001-BLK"},
		},
	}

	product, variations := NewTransformer().Build(p, defaultRules())

	assert.Equal(t, ProductTypeSimple, product.Type)
	assert.Empty(t, variations)
}

func TestBuild_VariableProduct(t *testing.T) {
	p := &promodata.Product{
		Code:     "TEE-9",
		Name:     "Tee Shirt",
		Category: "Apparel",
		Supplier: "Acme",
		Variants: []promodata.Variant{
			{
				Code: "TEE-9-S-BLK",
				Attributes: []promodata.VariantAttribute{
					{Name: "Size", Value: "S"},
					{Name: "Colour", Value: "Black"},
				},
				PriceGroups: []promodata.PriceGroup{
					{PriceBreaks: []promodata.PriceBreak{{Qty: 1, Price: 10}}},
				},
			},
			{
				Code: "TEE-9-M-BLK",
				Attributes: []promodata.VariantAttribute{
					{Name: "Size", Value: "M"},
					{Name: "Colour", Value: "Black"},
				},
				PriceGroups: []promodata.PriceGroup{
					{PriceBreaks: []promodata.PriceBreak{{Qty: 1, Price: 12}}},
				},
			},
			{
				Code: "TEE-9-M-RED",
				Attributes: []promodata.VariantAttribute{
					{Name: "Size", Value: "M"},
					{Name: "Colour", Value: "Red"},
				},
			},
		},
	}

	product, variations := NewTransformer().Build(p, defaultRules())

	assert.Equal(t, ProductTypeVariable, product.Type)
	assert.Empty(t, product.RegularPrice)

	require.Len(t, product.Attributes, 2)
	assert.Equal(t, Attribute{
		Name:      "Size",
		Position:  0,
		Visible:   true,
		Variation: true,
		Options:   []string{"S", "M"},
	}, product.Attributes[0])
	assert.Equal(t, Attribute{
		Name:      "Colour",
		Position:  1,
		Visible:   true,
		Variation: true,
		Options:   []string{"Black", "Red"},
	}, product.Attributes[1])

	require.Len(t, variations, 3)
	assert.Equal(t, "TEE-9-S-BLK", variations[0].SKU)
	assert.Equal(t, "13.00", variations[0].RegularPrice)
	assert.Equal(t, []VariationAttribute{
		{Name: "Size", Option: "S"},
		{Name: "Colour", Option: "Black"},
	}, variations[0].Attributes)
	assert.Equal(t, "15.60", variations[1].RegularPrice)
	assert.Equal(t, "0.00", variations[2].RegularPrice)
}

func TestBuild_VariantMarginUsesParentClassification(t *testing.T) {
	rules := models.RuleSet{
		DefaultMargin: 30,
		Rules: []models.MarginRule{
			{Field: models.RuleFieldCategory, Operator: models.OperatorIs, Value: "Apparel", Margin: 10},
		},
	}
	p := &promodata.Product{
		Code:     "TEE-9",
		Name:     "Tee Shirt",
		Category: "Apparel",
		Variants: []promodata.Variant{
			{Code: "A", PriceGroups: []promodata.PriceGroup{{PriceBreaks: []promodata.PriceBreak{{Qty: 1, Price: 10}}}}},
			{Code: "B", PriceGroups: []promodata.PriceGroup{{PriceBreaks: []promodata.PriceBreak{{Qty: 1, Price: 20}}}}},
		},
	}

	_, variations := NewTransformer().Build(p, rules)

	require.Len(t, variations, 2)
	assert.Equal(t, "11.00", variations[0].RegularPrice)
	assert.Equal(t, "22.00", variations[1].RegularPrice)
}

func TestImage_UnmarshalAcceptsStringAndObject(t *testing.T) {
	var p promodata.Product
	raw := `{"code":"X","images":["https://a.jpg",{"url":"https://b.jpg"},{"src":"https://c.jpg"}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	product, _ := NewTransformer().Build(&p, defaultRules())

	assert.Equal(t, []Image{
		{Src: "https://a.jpg"},
		{Src: "https://b.jpg"},
		{Src: "https://c.jpg"},
	}, product.Images)
}
