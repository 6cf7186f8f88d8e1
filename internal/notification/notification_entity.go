package notification

import (
	"fmt"
	"time"
)

// KeyPrefix adalah prefix key penyimpanan notifikasi.
const KeyPrefix = "notification:"

const TypeVoucherReminder = "voucher_reminder"

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	RefID     string    `json:"ref_id"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Key membangun key penyimpanan untuk satu notifikasi.
func Key(id string) string {
	return KeyPrefix + id
}

// VoucherReminderID deterministik per voucher per hari, sehingga
// konsumsi ulang event yang sama tidak menggandakan notifikasi.
func VoucherReminderID(voucherID string, day time.Time) string {
	return fmt.Sprintf("%s-%s-%s", TypeVoucherReminder, voucherID, day.UTC().Format("2006-01-02"))
}
