package model

import "time"

// Review отзыв клиента о завершённой записи
type Review struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointmentId"`
	Rating        int       `json:"rating"` // 1-5
	Comment       string    `json:"comment"`
	StaffResponse string    `json:"staffResponse,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r Review) GetID() string { return r.ID }

// HasResponse проверяет, ответил ли сотрудник на отзыв
func (r *Review) HasResponse() bool {
	return r.StaffResponse != ""
}
