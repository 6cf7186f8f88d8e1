package employee

import "time"

type CreateEmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	JoinDate string `json:"join_date"`
}

type UpdateEmployeeRequest struct {
	Name     *string `json:"name"`
	Position *string `json:"position"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	JoinDate *string `json:"join_date"`
	Active   *bool   `json:"active"`
}

type EmployeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	JoinDate  string `json:"join_date,omitempty"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Position:  e.Position,
		Phone:     e.Phone,
		Email:     e.Email,
		JoinDate:  e.JoinDate,
		Active:    e.Active,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp
}
