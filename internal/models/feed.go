package models

import "time"

// SocialPost - пост мокового социального фида
type SocialPost struct {
	User      string    `json:"user"`
	Post      string    `json:"post"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"` // need, offer, alert
}

// OfficialUpdate - нормализованный элемент официального RSS-фида
type OfficialUpdate struct {
	Title       string `json:"title"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description,omitempty"`
	Published   string `json:"pub_date,omitempty"`
	Message     string `json:"message,omitempty"` // информационное сообщение при пустом фиде
}
