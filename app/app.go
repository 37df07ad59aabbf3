package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/edutech-lab/school-library-service/config"
	"github.com/edutech-lab/school-library-service/internal/handler"
	"github.com/edutech-lab/school-library-service/internal/repository"
	"github.com/edutech-lab/school-library-service/internal/server"
	"github.com/edutech-lab/school-library-service/internal/service"
	"github.com/edutech-lab/school-library-service/migrations"
	"github.com/edutech-lab/school-library-service/pkg/kafka"
	"github.com/edutech-lab/school-library-service/pkg/logger"
	"github.com/edutech-lab/school-library-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}

	circulationRepo, err := repository.NewCirculationRepository(db, log)
	if err != nil {
		log.Fatal("circulation repo", zap.Error(err))
	}
	challengeRepo, err := repository.NewChallengeRepository(db, log)
	if err != nil {
		log.Fatal("challenge repo", zap.Error(err))
	}
	reviewRepo, err := repository.NewReviewRepository(db, log)
	if err != nil {
		log.Fatal("review repo", zap.Error(err))
	}

	circulationSvc := service.NewCirculationService(circulationRepo, log)
	challengeSvc := service.NewChallengeService(challengeRepo, log)
	reviewSvc := service.NewReviewService(reviewRepo, log)

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	consumerGroup, err := kafka.NewConsumer(cfg.Kafka, kafka.ChallengeConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	go kafka.Consume(consumeCtx, consumerGroup, handler.NewConsumer(challengeSvc.RecordReturn, log), log, kafka.BookReturnedTopic)

	h := handler.New(circulationSvc, challengeSvc, reviewSvc, producer, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	consumeCancel()
	if err := consumerGroup.Close(); err != nil {
		log.Error("consumer close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
