package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	trackerpb "github.com/Salam-35/PhdTrack-sub000/gen/proto/tracker/v1"
	"github.com/Salam-35/PhdTrack-sub000/internal/applicants"
	"github.com/Salam-35/PhdTrack-sub000/internal/async"
	"github.com/Salam-35/PhdTrack-sub000/internal/common"
	"github.com/Salam-35/PhdTrack-sub000/internal/deadlines"
	"github.com/Salam-35/PhdTrack-sub000/internal/evaluations"
	"github.com/Salam-35/PhdTrack-sub000/internal/export"
	"github.com/Salam-35/PhdTrack-sub000/internal/llm/openai"
	"github.com/Salam-35/PhdTrack-sub000/internal/pipeline"
	repo "github.com/Salam-35/PhdTrack-sub000/internal/repository"
	"github.com/Salam-35/PhdTrack-sub000/internal/server"
	"github.com/Salam-35/PhdTrack-sub000/internal/transcript"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// .env is optional; real deployments set env directly
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer server.CloseDB(entc, pool, logger)

	if err := server.PingDB(ctx, pool, logger, 3*time.Second); err != nil {
		logger.Error("DB health failed", "error", err)
		os.Exit(1)
	}
	logger.Info("DB health OK")

	// repos
	applicantRepo := repo.NewApplicantRepository(entc, logger)
	universityRepo := repo.NewUniversityRepository(entc, logger)
	evalRepo := repo.NewEvaluationRepository(entc, logger)
	fileRepo := repo.NewTranscriptFileRepository(entc, logger)
	jobRepo := repo.NewExtractJobRepository(entc, logger)

	// extraction pipeline
	client := openai.NewClient(openai.Config{
		APIKey:          cfg.LLM.APIKey,
		Model:           cfg.LLM.Model,
		VisionModel:     cfg.LLM.VisionModel,
		Temperature:     cfg.LLM.Temperature,
		Timeout:         cfg.LLM.Timeout,
		LenientOptional: true,
	}, logger)
	runner := pipeline.NewRunner(logger, pipeline.Config{
		ChunkBudget: cfg.Extract.ChunkBudget,
		GradeMap:    transcript.DefaultGradeMap(),
	}, client)

	// services
	applicantSvc := applicants.NewService(applicantRepo, logger)
	evalSvc := evaluations.NewService(runner, evalRepo, fileRepo, jobRepo, applicantRepo, transcript.DefaultGradeMap(), cfg.LLM.Model, logger)
	deadlineSvc := deadlines.NewService(universityRepo, applicantRepo, logger)
	exportSvc := export.NewService(evalRepo, universityRepo, logger)

	queue := async.NewExtractionQueue(evalSvc, logger)

	// gRPC server
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(server.RequestIDInterceptor(logger)),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	trackerpb.RegisterApplicantsServiceServer(grpcServer, server.NewApplicantServer(applicantSvc, logger))
	trackerpb.RegisterEvaluationsServiceServer(grpcServer, server.NewEvaluationServer(evalSvc, queue, logger))
	trackerpb.RegisterDeadlinesServiceServer(grpcServer, server.NewDeadlineServer(deadlineSvc, logger))
	trackerpb.RegisterExportServiceServer(grpcServer, server.NewExportServer(exportSvc, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
