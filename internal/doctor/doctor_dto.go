package doctor

import "time"

type CreateDoctorRequest struct {
	Name           string   `json:"name" binding:"required"`
	Specialization string   `json:"specialization"`
	LicenseNo      string   `json:"license_no" binding:"required"`
	Shifts         []string `json:"shifts"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email" binding:"omitempty,email"`
}

type UpdateDoctorRequest struct {
	Name           *string   `json:"name"`
	Specialization *string   `json:"specialization"`
	LicenseNo      *string   `json:"license_no"`
	Shifts         *[]string `json:"shifts"`
	Phone          *string   `json:"phone"`
	Email          *string   `json:"email" binding:"omitempty,email"`
	Active         *bool     `json:"active"`
}

type DoctorResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization,omitempty"`
	LicenseNo      string   `json:"license_no"`
	Shifts         []string `json:"shifts,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Email          string   `json:"email,omitempty"`
	Active         bool     `json:"active"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

func mapToResponse(d Doctor) DoctorResponse {
	return DoctorResponse{
		ID:             d.ID,
		Name:           d.Name,
		Specialization: d.Specialization,
		LicenseNo:      d.LicenseNo,
		Shifts:         d.Shifts,
		Phone:          d.Phone,
		Email:          d.Email,
		Active:         d.Active,
		CreatedAt:      d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      d.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(doctors []Doctor) []DoctorResponse {
	resp := make([]DoctorResponse, len(doctors))
	for i, d := range doctors {
		resp[i] = mapToResponse(d)
	}
	return resp
}
