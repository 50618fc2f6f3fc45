package catalog

// ColorOption is a purchasable color variant of a product.
type ColorOption struct {
	Name    string `json:"name"`
	Image   string `json:"image"`
	InStock bool   `json:"inStock"`
}

// Specs holds the display fields shown on the product detail screen.
type Specs struct {
	Display   string `json:"display"`
	Processor string `json:"processor"`
	Camera    string `json:"camera"`
	Battery   string `json:"battery"`
}

// Product is an immutable catalog entry. Prices are whole BRL for the
// 256GB variant; other capacities derive from BasePrice (see pricing.go).
type Product struct {
	ID               string        `json:"id"`
	Model            string        `json:"model"`
	DisplayName      string        `json:"displayName"`
	Storage          string        `json:"storage"`
	BasePrice        int64         `json:"basePrice"`
	OriginalPrice    int64         `json:"originalPrice"`
	DiscountedPrice  int64         `json:"discountedPrice"`
	Discount         int           `json:"discount"`
	Image            string        `json:"image"`
	Colors           []ColorOption `json:"colors"`
	Specs            Specs         `json:"specs"`
	MaxInstallments  int           `json:"maxInstallments"`
	InstallmentPrice int64         `json:"installmentPrice"`
}

// Color returns the color option with the given name, if present.
func (p *Product) Color(name string) (ColorOption, bool) {
	for _, c := range p.Colors {
		if c.Name == name {
			return c, true
		}
	}
	return ColorOption{}, false
}
