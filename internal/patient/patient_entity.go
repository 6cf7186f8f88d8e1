package patient

import "time"

const KeyPrefix = "patient:"

// Patient adalah rekam data pasien klinik. MedicalRecordNo (nomor RM)
// dibangkitkan berurutan saat registrasi dan tidak pernah berubah.
type Patient struct {
	ID              string    `json:"id"`
	MedicalRecordNo string    `json:"medical_record_no"`
	Name            string    `json:"name"`
	BirthDate       string    `json:"birth_date,omitempty"` // YYYY-MM-DD
	Gender          string    `json:"gender,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Address         string    `json:"address,omitempty"`
	Allergies       string    `json:"allergies,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func Key(id string) string {
	return KeyPrefix + id
}
