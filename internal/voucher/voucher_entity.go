package voucher

import "time"

const KeyPrefix = "voucher:"

const (
	DiscountPercentage = "percentage"
	DiscountNominal    = "nominal"
)

// Voucher adalah promo klinik dengan masa berlaku. Nilai diskon hanya
// disimpan dan ditampilkan; perhitungan potongan terjadi di kasir.
type Voucher struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Title         string    `json:"title"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue float64   `json:"discount_value"`
	ValidUntil    string    `json:"valid_until"` // YYYY-MM-DD
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func Key(id string) string {
	return KeyPrefix + id
}

// daysUntilExpiry menghitung sisa hari masa berlaku relatif terhadap now.
// Negatif berarti sudah lewat; error berarti valid_until tidak bisa diparse.
func (v Voucher) daysUntilExpiry(now time.Time) (int, error) {
	until, err := time.Parse("2006-01-02", v.ValidUntil)
	if err != nil {
		return 0, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(until.Sub(today).Hours() / 24), nil
}
