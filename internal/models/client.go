package models

import "time"

// Cliente do profissional autônomo, sem login
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"column:nome;size:100;not null" json:"nome"`
	Phone   string `gorm:"column:telefone;size:20;not null" json:"telefone"`
	Email   string `gorm:"column:email;size:100" json:"email"`
	Address string `gorm:"column:endereco;size:255" json:"endereco"`
	Notes   string `gorm:"column:observacoes;size:255" json:"observacoes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string {
	return "clientes"
}
