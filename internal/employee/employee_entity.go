package employee

import "time"

const KeyPrefix = "employee:"

// Employee adalah master data karyawan non-dokter (perawat, admin, dst).
type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	JoinDate  string    `json:"join_date,omitempty"` // YYYY-MM-DD
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func Key(id string) string {
	return KeyPrefix + id
}
