package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"column:nome;size:100;not null" json:"nome"`
	Description string  `gorm:"column:descricao;size:255" json:"descricao"`
	Price       float64 `gorm:"column:preco;not null" json:"preco"`
	Duration    *int    `gorm:"column:duracao" json:"duracao"` // em minutos

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Service) TableName() string {
	return "servicos"
}
