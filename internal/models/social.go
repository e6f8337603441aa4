package models

import "time"

type FriendStatus string

const (
	FriendPending  FriendStatus = "pending"
	FriendAccepted FriendStatus = "accepted"
	FriendRejected FriendStatus = "rejected"
)

type Friend struct {
	Username     string   `json:"username"`
	Level        int      `json:"level"`
	TotalXP      int      `json:"total_xp"`
	WeeklyXP     int      `json:"weekly_xp"`
	IsOnline     bool     `json:"is_online"`
	LastSeen     string   `json:"last_seen,omitempty"`
	FriendsSince string   `json:"friends_since"`
	Badges       []string `json:"badges"`
}

type FriendRequest struct {
	ID     string       `json:"id"`
	From   string       `json:"from"`
	To     string       `json:"to"`
	SentAt time.Time    `json:"sent_at"`
	Status FriendStatus `json:"status"`
}
