package catalog

// Static product dataset. Base prices are the 256GB variant after the
// 15% campaign discount over the original price.
var products = []Product{
	{
		ID:              "iphone-17",
		Model:           "iPhone 17",
		DisplayName:     "iPhone 17",
		Storage:         "256GB",
		BasePrice:       6799,
		OriginalPrice:   7999,
		DiscountedPrice: 6799,
		Discount:        15,
		Image:           "/images/iphone-17-preto.jpg",
		Colors: []ColorOption{
			{Name: "Preto", Image: "/images/iphone-17-preto.jpg", InStock: true},
			{Name: "Branco", Image: "/images/iphone-17-branco.jpg", InStock: true},
			{Name: "Azul", Image: "/images/iphone-17-azul.jpg", InStock: true},
			{Name: "Verde", Image: "/images/iphone-17-verde.jpg", InStock: true},
		},
		Specs: Specs{
			Display:   "6.1\" Super Retina",
			Processor: "A19",
			Camera:    "48MP Principal",
			Battery:   "3582 mAh",
		},
		MaxInstallments:  40,
		InstallmentPrice: 170,
	},
	{
		ID:              "iphone-17-pro",
		Model:           "iPhone 17 Pro",
		DisplayName:     "iPhone 17 Pro",
		Storage:         "256GB",
		BasePrice:       9774,
		OriginalPrice:   11499,
		DiscountedPrice: 9774,
		Discount:        15,
		Image:           "/images/iphone-17-pro-prateado.jpg",
		Colors: []ColorOption{
			{Name: "Prateado", Image: "/images/iphone-17-pro-prateado.jpg", InStock: true},
			{Name: "Preto", Image: "/images/iphone-17-pro.jpg", InStock: false},
			{Name: "Ouro", Image: "/images/iphone-17-pro.jpg", InStock: false},
			{Name: "Laranja", Image: "/images/iphone-17-pro-laranja.jpg", InStock: true},
			{Name: "Azul Intenso", Image: "/images/iphone-17-pro-azul-intenso.jpg", InStock: true},
		},
		Specs: Specs{
			Display:   "6.3\" Super Retina XDR",
			Processor: "A19 Pro",
			Camera:    "48MP Tripla",
			Battery:   "3349 mAh",
		},
		MaxInstallments:  40,
		InstallmentPrice: 244,
	},
	{
		ID:              "iphone-17-pro-max",
		Model:           "iPhone 17 Pro Max",
		DisplayName:     "iPhone 17 Pro Max",
		Storage:         "256GB",
		BasePrice:       10624,
		OriginalPrice:   12499,
		DiscountedPrice: 10624,
		Discount:        15,
		Image:           "/images/iphone-17-pro-max-prateado.jpg",
		Colors: []ColorOption{
			{Name: "Prateado", Image: "/images/iphone-17-pro-max-prateado.jpg", InStock: true},
			{Name: "Preto", Image: "/images/iphone-17-pro-max-prateado.jpg", InStock: false},
			{Name: "Ouro", Image: "/images/iphone-17-pro-max-prateado.jpg", InStock: false},
			{Name: "Laranja Cósmico", Image: "/images/iphone-17-pro-max-laranja-cosmico.jpg", InStock: true},
			{Name: "Azul Intenso", Image: "/images/iphone-17-pro-max-azul-intenso.jpg", InStock: true},
		},
		Specs: Specs{
			Display:   "6.9\" Super Retina XDR",
			Processor: "A19 Pro",
			Camera:    "48MP Tripla",
			Battery:   "4685 mAh",
		},
		MaxInstallments:  40,
		InstallmentPrice: 266,
	},
	{
		ID:              "iphone-16",
		Model:           "iPhone 16",
		DisplayName:     "iPhone 16",
		Storage:         "256GB",
		BasePrice:       5779,
		OriginalPrice:   6799,
		DiscountedPrice: 5779,
		Discount:        15,
		Image:           "/images/iphone-16-preto.jpg",
		Colors: []ColorOption{
			{Name: "Preto", Image: "/images/iphone-16-preto.jpg", InStock: true},
			{Name: "Branco", Image: "/images/iphone-16-branco.jpg", InStock: true},
			{Name: "Rosa", Image: "/images/iphone-16-rosa.jpg", InStock: true},
			{Name: "Azul", Image: "/images/iphone-16-azul.jpg", InStock: true},
		},
		Specs: Specs{
			Display:   "6.1\" Super Retina",
			Processor: "A18",
			Camera:    "48MP Principal",
			Battery:   "3582 mAh",
		},
		MaxInstallments:  40,
		InstallmentPrice: 144,
	},
	{
		ID:              "iphone-16-pro-max",
		Model:           "iPhone 16 Pro Max",
		DisplayName:     "iPhone 16 Pro Max",
		Storage:         "256GB",
		BasePrice:       8924,
		OriginalPrice:   10499,
		DiscountedPrice: 8924,
		Discount:        15,
		Image:           "/images/iphone16promax-preto.jpg",
		Colors: []ColorOption{
			{Name: "Preto", Image: "/images/iphone16promax-preto.jpg", InStock: true},
			{Name: "Prateado", Image: "/images/iphone16promax-preto.jpg", InStock: false},
			{Name: "Ouro", Image: "/images/iphone16promax-preto.jpg", InStock: false},
			{Name: "Bronze", Image: "/images/iphone16promax-preto.jpg", InStock: false},
		},
		Specs: Specs{
			Display:   "6.9\" Super Retina XDR",
			Processor: "A18 Pro",
			Camera:    "48MP Tripla",
			Battery:   "4685 mAh",
		},
		MaxInstallments:  40,
		InstallmentPrice: 223,
	},
	{
		ID:              "iphone-15",
		Model:           "iPhone 15",
		DisplayName:     "iPhone 15",
		Storage:         "256GB",
		BasePrice:       5524,
		OriginalPrice:   6499,
		DiscountedPrice: 5524,
		Discount:        15,
		Image:           "/images/iphone-15-preto.jpg",
		Colors: []ColorOption{
			{Name: "Preto", Image: "/images/iphone-15-preto.jpg", InStock: true},
			{Name: "Branco", Image: "/images/iphone-15-branco.jpg", InStock: true},
			{Name: "Rosa", Image: "/images/iphone-15-rosa.jpg", InStock: true},
			{Name: "Amarelo", Image: "/images/iphone-15-amarelo.jpg", InStock: true},
		},
		Specs: Specs{
			Display:   "6.1\" Liquid Retina",
			Processor: "A16 Bionic",
			Camera:    "48MP Principal",
			Battery:   "3349 mAh",
		},
		MaxInstallments:  40,
		InstallmentPrice: 138,
	},
	{
		ID:              "iphone-14",
		Model:           "iPhone 14",
		DisplayName:     "iPhone 14",
		Storage:         "256GB",
		BasePrice:       5099,
		OriginalPrice:   5999,
		DiscountedPrice: 5099,
		Discount:        15,
		Image:           "/images/iphone-14-preto.jpg",
		Colors: []ColorOption{
			{Name: "Preto", Image: "/images/iphone-14-preto.jpg", InStock: true},
			{Name: "Branco", Image: "/images/iphone-14-branco.jpeg", InStock: true},
			{Name: "Roxo", Image: "/images/iphone-14-roxo.jpg", InStock: true},
			{Name: "Azul", Image: "/images/iphone-14-azul.jpg", InStock: true},
		},
		Specs: Specs{
			Display:   "6.1\" Super Retina",
			Processor: "A15 Bionic",
			Camera:    "12MP Dupla",
			Battery:   "3279 mAh",
		},
		MaxInstallments:  40,
		InstallmentPrice: 127,
	},
}
