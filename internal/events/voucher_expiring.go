package events

import "time"

const VoucherExpiringTopic = "clinic.voucher.reminder.v1"

type VoucherExpiringEvent struct {
	EventType  string    `json:"event_type"`
	VoucherID  string    `json:"voucher_id"`
	Code       string    `json:"code"`
	Title      string    `json:"title"`
	ValidUntil string    `json:"valid_until"`
	DaysLeft   int       `json:"days_left"`
	OccurredAt time.Time `json:"occurred_at"`
}
