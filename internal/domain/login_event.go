package domain

import "time"

// LoginEvent is an append-only audit row recorded whenever a user opens a
// session. There is no credential check; the email is taken as-is.
type LoginEvent struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string    `gorm:"column:correo;size:255;not null" json:"correo"`
	LoggedAt time.Time `gorm:"column:fecha_login;autoCreateTime" json:"fecha_login"`
}

// TableName Specify table name
func (LoginEvent) TableName() string {
	return "usuarios_logueados"
}
