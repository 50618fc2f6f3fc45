package catalog

import "math"

// Storage capacities offered across the catalog.
const (
	Storage128 = "128GB"
	Storage256 = "256GB"
	Storage512 = "512GB"
)

// InstallmentOptions are the installment counts offered on the cart screen.
var InstallmentOptions = []int{8, 12, 24, 32, 40}

// DefaultInstallments is used when the user never picks a count.
const DefaultInstallments = 40

// ValidStorage reports whether s is a capacity the catalog sells.
func ValidStorage(s string) bool {
	return s == Storage128 || s == Storage256 || s == Storage512
}

// PriceForStorage derives the price of a capacity variant from the 256GB
// base price: 128GB is 5% cheaper, 512GB 5% dearer.
func PriceForStorage(basePrice int64, storage string) int64 {
	switch storage {
	case Storage128:
		return roundBRL(float64(basePrice) * 0.95)
	case Storage512:
		return roundBRL(float64(basePrice) * 1.05)
	default:
		return basePrice
	}
}

// PixPrice applies the 10% PIX discount. Every view showing a PIX price
// must go through this so card, detail and cart always agree.
func PixPrice(price int64) int64 {
	return roundBRL(float64(price) * 0.9)
}

// InstallmentValue is the per-installment amount for an n-installment plan.
func InstallmentValue(price int64, n int) int64 {
	if n <= 0 {
		return price
	}
	return roundBRL(float64(price) / float64(n))
}

// ValidInstallments reports whether n is one of the offered counts.
func ValidInstallments(n int) bool {
	for _, opt := range InstallmentOptions {
		if n == opt {
			return true
		}
	}
	return false
}

func roundBRL(v float64) int64 {
	return int64(math.Round(v))
}
