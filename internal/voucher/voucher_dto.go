package voucher

import "time"

type CreateVoucherRequest struct {
	Code          string  `json:"code" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	DiscountType  string  `json:"discount_type" binding:"required,oneof=percentage nominal"`
	DiscountValue float64 `json:"discount_value" binding:"required,gt=0"`
	ValidUntil    string  `json:"valid_until" binding:"required"`
}

type UpdateVoucherRequest struct {
	Code          *string  `json:"code"`
	Title         *string  `json:"title"`
	DiscountType  *string  `json:"discount_type" binding:"omitempty,oneof=percentage nominal"`
	DiscountValue *float64 `json:"discount_value" binding:"omitempty,gt=0"`
	ValidUntil    *string  `json:"valid_until"`
	Active        *bool    `json:"active"`
}

type VoucherResponse struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Title         string  `json:"title"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
	ValidUntil    string  `json:"valid_until"`
	Active        bool    `json:"active"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ExpiringVoucher adalah item pengingat masa berlaku untuk dashboard.
type ExpiringVoucher struct {
	VoucherResponse
	DaysLeft int `json:"days_left"`
}

func mapToResponse(v Voucher) VoucherResponse {
	return VoucherResponse{
		ID:            v.ID,
		Code:          v.Code,
		Title:         v.Title,
		DiscountType:  v.DiscountType,
		DiscountValue: v.DiscountValue,
		ValidUntil:    v.ValidUntil,
		Active:        v.Active,
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     v.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(vouchers []Voucher) []VoucherResponse {
	resp := make([]VoucherResponse, len(vouchers))
	for i, v := range vouchers {
		resp[i] = mapToResponse(v)
	}
	return resp
}
