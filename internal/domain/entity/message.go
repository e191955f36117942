package entity

import "time"

// MessageStatus represents the processing status of a contact message.
type MessageStatus string

const (
	MessageStatusNew     MessageStatus = "new"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

var messageStatusText = map[MessageStatus]string{
	MessageStatusNew:     "Новый",
	MessageStatusRead:    "Прочитано",
	MessageStatusReplied: "Ответ отправлен",
}

// Message is a contact form submission. Both read and replied are
// reachable directly from new; no ordering is enforced between them.
type Message struct {
	ID      uint          `gorm:"primaryKey" json:"id"`
	Name    string        `gorm:"type:varchar(255);not null" json:"name"`
	Phone   string        `gorm:"type:varchar(50);not null" json:"phone"`
	Email   string        `gorm:"type:varchar(255);not null" json:"email"`
	Subject string        `gorm:"type:varchar(255);not null" json:"subject"`
	Message string        `gorm:"type:text;not null" json:"message"`
	Status  MessageStatus `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Message) TableName() string {
	return "messages"
}

// IsNew checks if the message has not been processed yet.
func (m *Message) IsNew() bool {
	return m.Status == MessageStatusNew
}

// MarkRead sets the message status to read.
func (m *Message) MarkRead() {
	m.Status = MessageStatusRead
}

// MarkReplied sets the message status to replied.
func (m *Message) MarkReplied() {
	m.Status = MessageStatusReplied
}

// StatusText is the Russian label shown in the admin panel.
func (m *Message) StatusText() string {
	if text, ok := messageStatusText[m.Status]; ok {
		return text
	}
	return string(m.Status)
}
