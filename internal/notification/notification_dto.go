package notification

import "time"

type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	RefID     string    `json:"ref_id"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func mapToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		RefID:     n.RefID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func mapToListResponse(ns []Notification) []NotificationResponse {
	resp := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		resp = append(resp, mapToResponse(n))
	}
	return resp
}
