package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/WilianUno/gestor-autonomo/internal/config"
	dbpkg "github.com/WilianUno/gestor-autonomo/internal/db"
	"github.com/WilianUno/gestor-autonomo/internal/models"
)

func intPtr(v int) *int { return &v }

// Popula o banco com dados de exemplo para desenvolvimento local.
func main() {

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var total int64
	if err := db.Model(&models.Client{}).Count(&total).Error; err != nil {
		logger.Fatal().Err(err).Msg("falha ao consultar clientes")
	}
	if total > 0 {
		logger.Info().Int64("clientes", total).Msg("banco já possui dados, seed ignorado")
		return
	}

	clients := []models.Client{
		{Name: "João Silva", Phone: "(11) 99999-1111", Email: "joao@email.com"},
		{Name: "Maria Santos", Phone: "(11) 99999-2222", Email: "maria@email.com"},
		{Name: "Pedro Oliveira", Phone: "(11) 99999-3333", Email: "pedro@email.com"},
	}
	if err := db.Create(&clients).Error; err != nil {
		logger.Fatal().Err(err).Msg("falha ao criar clientes")
	}

	services := []models.Service{
		{Name: "Corte Masculino", Description: "Corte de cabelo masculino tradicional", Price: 35.00, Duration: intPtr(30)},
		{Name: "Barba", Description: "Aparar e modelar barba", Price: 25.00, Duration: intPtr(20)},
		{Name: "Corte + Barba", Description: "Combo corte e barba", Price: 55.00, Duration: intPtr(45)},
	}
	if err := db.Create(&services).Error; err != nil {
		logger.Fatal().Err(err).Msg("falha ao criar serviços")
	}

	logger.Info().
		Int("clientes", len(clients)).
		Int("servicos", len(services)).
		Msg("seed concluído")
}
