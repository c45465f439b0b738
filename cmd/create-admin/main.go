package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/edugest/edugest-api/internal/models"
	"github.com/edugest/edugest-api/internal/repository"
	"github.com/edugest/edugest-api/internal/service"
	"github.com/edugest/edugest-api/pkg/config"
	"github.com/edugest/edugest-api/pkg/database"
	"github.com/edugest/edugest-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, cfg.Database.Driver); err != nil {
			logr.Sugar().Fatalw("database migration failed", "error", err)
		}
	}

	tokens := service.NewTokenService(service.TokenConfig{Secret: cfg.JWT.Secret, Expiration: cfg.JWT.Expiration})
	auth := service.NewAuthService(repository.NewUserRepository(db), tokens, logr)

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Criar administrador ===")

	fmt.Print("Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)

	fmt.Print("Palavra-passe: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("Erro ao ler a palavra-passe")
		os.Exit(1)
	}

	user, err := auth.Register(context.Background(), models.CredentialsRequest{Email: email, Password: string(raw)})
	if err != nil {
		fmt.Printf("Erro: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Administrador %s criado com id %d\n", user.Email, user.ID)
}
