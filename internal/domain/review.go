package domain

import "time"

type Review struct {
	ID        uint      `json:"id"`
	StallID   uint      `json:"stall_id"`
	UserID    uint      `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Favorite struct {
	ID        uint      `json:"id"`
	StallID   uint      `json:"stall_id"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Report struct {
	ID        uint      `json:"id"`
	StallID   uint      `json:"stall_id"`
	UserID    uint      `json:"user_id"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
