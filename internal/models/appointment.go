package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"column:cliente_id;not null" json:"cliente_id"`
	Client   Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `gorm:"column:servico_id;not null" json:"servico_id"`
	Service   Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	DateTime time.Time `gorm:"column:data_hora;not null" json:"data_hora"`

	Status string `gorm:"size:20;default:'pendente';check:status IN ('pendente','confirmado','concluido','cancelado')" json:"status"`

	// Preço congelado no momento do agendamento
	Value float64 `gorm:"column:valor;not null" json:"valor"`

	Notes string `gorm:"column:observacoes;size:255" json:"observacoes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string {
	return "agendamentos"
}
