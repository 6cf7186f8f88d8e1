package doctor

import "time"

const KeyPrefix = "doctor:"

// Doctor adalah master data dokter gigi klinik.
type Doctor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization,omitempty"`
	LicenseNo      string    `json:"license_no"` // nomor SIP
	Shifts         []string  `json:"shifts,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func Key(id string) string {
	return KeyPrefix + id
}
