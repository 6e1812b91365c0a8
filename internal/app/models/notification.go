package models

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	type alias Notification
	var raw struct {
		alias
		ID interface{} `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*n = Notification(raw.alias)
	id, err := cast.ToStringE(raw.ID)
	if err != nil {
		return err
	}
	n.ID = id
	return nil
}

type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count,omitempty"`
}
