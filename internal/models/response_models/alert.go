package response_models

type AlertView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Read      bool   `json:"read"`
	CreatedAt int64  `json:"created_at"`
}

type AlertList struct {
	Alerts      []AlertView `json:"alerts"`
	UnreadCount int         `json:"unread_count"`
}
