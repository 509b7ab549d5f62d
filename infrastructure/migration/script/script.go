package main

import (
	"context"
	"flag"
	"time"

	"github.com/vfg2006/valuable-moments-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuable-moments-api/infrastructure/migration"
	"github.com/vfg2006/valuable-moments-api/internal/config"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
)

func main() {
	envName := flag.String("env", domain.EnvironmentUAT.String(), "ambiente alvo (UAT ou PROD)")
	businesses := flag.Int("businesses", 5, "quantidade de empresas de exemplo")
	runMigrations := flag.Bool("migrate", true, "aplica as migrations antes de gravar os dados")
	allowProd := flag.Bool("allow-prod", false, "permite gravar dados de exemplo em PROD")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	env, err := domain.ParseEnvironment(*envName)
	if err != nil {
		log.L.WithField("env", *envName).Fatal("Ambiente inválido")
	}

	if env == domain.EnvironmentPROD && !*allowProd {
		log.L.Fatal("Recusando gravar dados de exemplo em PROD sem -allow-prod")
	}

	db, ok := cfg.Database(env)
	if !ok {
		log.L.WithField("env", env.String()).Fatal("Ambiente sem configuração de banco")
	}

	start := time.Now()
	log.L.WithFields(log.Fields{
		"env":        env.String(),
		"businesses": *businesses,
	}).Info("Iniciando script de dados de exemplo...")

	if *runMigrations {
		// migrations só em conexão direta: o túnel SOCKS vive dentro do Manager
		if err := migration.Up(postgres.BuildDSN(db, db.Host, db.Port, cfg.Pool)); err != nil {
			log.L.WithError(err).Fatal("Erro ao aplicar migrations")
		}
	}

	manager, err := postgres.NewManagerFromConfig(cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao configurar a conexão com o banco")
	}
	defer manager.Close()

	ctx := context.Background()

	conn, err := manager.Pool(ctx, env)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	summary, err := migration.Seed(ctx, conn, migration.SeedOptions{Businesses: *businesses})
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao gravar dados de exemplo")
	}

	log.L.WithFields(log.Fields{
		"tag":          summary.Tag,
		"business_ids": summary.BusinessIDs,
		"elapsed":      time.Since(start).String(),
	}).Info("Script finalizado com sucesso")
}
