package patient

import "time"

type CreatePatientRequest struct {
	Name      string `json:"name" binding:"required"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender" binding:"omitempty,oneof=male female"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Allergies string `json:"allergies"`
	Notes     string `json:"notes"`
}

type UpdatePatientRequest struct {
	Name      *string `json:"name"`
	BirthDate *string `json:"birth_date"`
	Gender    *string `json:"gender" binding:"omitempty,oneof=male female"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Allergies *string `json:"allergies"`
	Notes     *string `json:"notes"`
}

type PatientResponse struct {
	ID              string `json:"id"`
	MedicalRecordNo string `json:"medical_record_no"`
	Name            string `json:"name"`
	BirthDate       string `json:"birth_date,omitempty"`
	Gender          string `json:"gender,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
	Allergies       string `json:"allergies,omitempty"`
	Notes           string `json:"notes,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func mapToResponse(p Patient) PatientResponse {
	return PatientResponse{
		ID:              p.ID,
		MedicalRecordNo: p.MedicalRecordNo,
		Name:            p.Name,
		BirthDate:       p.BirthDate,
		Gender:          p.Gender,
		Phone:           p.Phone,
		Address:         p.Address,
		Allergies:       p.Allergies,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(patients []Patient) []PatientResponse {
	resp := make([]PatientResponse, len(patients))
	for i, p := range patients {
		resp[i] = mapToResponse(p)
	}
	return resp
}
