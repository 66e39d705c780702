package model

// Service услуга, на которую записываются клиенты
type Service struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`    // в минимальных единицах валюты
	Duration int    `json:"duration"` // в минутах
}

func (s Service) GetID() string { return s.ID }
