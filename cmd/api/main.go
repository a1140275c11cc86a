package main

import (
	"log"

	"github.com/joho/godotenv"
)

// @title API de Gestão de Estoque
// @version 1.0
// @description API para gestão de produtos, estoque, fornecedores, compras e vendas
// @BasePath /api/v1
func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	app, err := NewApp()
	if err != nil {
		log.Fatalf("Erro ao inicializar a aplicação: %v", err)
	}
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatalf("Erro ao iniciar o servidor: %v", err)
	}
}
