package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/kyletan/ippt-tracker/gen/proto/ippt/v1"
	"github.com/kyletan/ippt-tracker/internal/async"
	"github.com/kyletan/ippt-tracker/internal/common"
	"github.com/kyletan/ippt-tracker/internal/docintel"
	"github.com/kyletan/ippt-tracker/internal/export"
	"github.com/kyletan/ippt-tracker/internal/ingest"
	"github.com/kyletan/ippt-tracker/internal/llm"
	"github.com/kyletan/ippt-tracker/internal/llm/openai"
	"github.com/kyletan/ippt-tracker/internal/ocr"
	processor "github.com/kyletan/ippt-tracker/internal/pipeline"
	repo "github.com/kyletan/ippt-tracker/internal/repository"
	svc "github.com/kyletan/ippt-tracker/internal/server"
)

func main() {
	// Process-level logger. Library packages log through slog.
	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()
	zl := zlog.Sugar()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		zl.Fatalf("invalid configuration: %v", err)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		zl.Fatalf("opening database: %v", err)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		zl.Fatalf("database ping: %v", err)
	}
	zl.Infow("database health OK")

	sheetsRepo := repo.NewScoresheetRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	soldiersRepo := repo.NewSoldierRepository(entc, logger)

	// OCR providers. Cloud is preferred when configured; tesseract handles
	// images when the cloud call is unavailable or fails.
	var cloud processor.CloudOCR
	if cfg.OCR.DocintelEndpoint != "" {
		cloud = docintel.NewClient(docintel.Config{
			Endpoint: cfg.OCR.DocintelEndpoint,
			APIKey:   cfg.OCR.DocintelKey,
			ModelID:  cfg.OCR.DocintelModel,
		}, logger)
	}
	local := ocr.NewExtractor(ocr.Config{
		TessdataDir:         cfg.OCR.TessdataDir,
		PSM:                 cfg.OCR.TesseractPSM,
		EnableTSVConfidence: true,
	}, logger)
	ocrStage := processor.NewOCRStage(sheetsRepo, jobsRepo, cloud, local, logger)

	// Vision fallback only engages when the line strategies come up short.
	var extractor llm.SoldierExtractor
	if cfg.LLM.APIKey != "" {
		extractor = openai.NewClient(openai.Config{
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
			MaxSoldiers: cfg.Parse.MaxSoldiers,
		}, logger)
	} else {
		zl.Infow("OPENAI_API_KEY not set, vision fallback disabled")
	}

	parseCfg := processor.Config{
		MinConfidence: cfg.Parse.MinConfidence,
		ModelName:     cfg.LLM.Model,
	}
	parseCfg.Extract.MaxRecords = cfg.Parse.MaxSoldiers
	parseStage := processor.NewParseStage(logger, parseCfg, jobsRepo, soldiersRepo, extractor)

	proc := processor.NewProcessor(logger, ocrStage, parseStage)
	ingestor := ingest.NewFSIngestor(sheetsRepo, logger)
	exporter := export.NewService(sheetsRepo, soldiersRepo, logger)

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(4),
		async.WithQueueSize(256),
		async.WithProcessTimeout(3*time.Minute),
	)

	// Optional drop-directory watcher: scans dropped there are ingested and
	// queued without an RPC call.
	if dirs := os.Getenv("WATCH_DIRS"); dirs != "" {
		roots := splitCSV(dirs)
		evCh, errCh, werr := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       roots,
			InitialScan: os.Getenv("WATCH_INITIAL_SCAN") == "true",
			Debounce:    500 * time.Millisecond,
		})
		if werr != nil {
			zl.Fatalf("starting watcher: %v", werr)
		}
		go watchLoop(ctx, evCh, errCh, ingestor, queue, logger)
		zl.Infow("watching drop directories", "roots", roots)
	}

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		zl.Fatalf("listen on %s: %v", addr, err)
	}
	grpcServer := grpc.NewServer()

	scoresheetService := svc.NewScoresheetService(ingestor, proc, jobsRepo, soldiersRepo, exporter, logger)
	v1.RegisterScoresheetServiceServer(grpcServer, scoresheetService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	zl.Infof("ipptd listening on %s", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			zl.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	zl.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	zl.Infow("stopped")
}

// watchLoop ingests paths reported by the directory watcher and queues the
// resulting scoresheets for processing. It returns when ctx is cancelled or
// both channels are closed.
func watchLoop(ctx context.Context, evCh <-chan string, errCh <-chan error, ingestor ingest.Ingestor, queue async.Queue, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case werr, ok := <-errCh:
			if !ok {
				return
			}
			logger.Error("watcher error", "error", werr)
		case path, ok := <-evCh:
			if !ok {
				return
			}
			r, ierr := ingestor.IngestPath(ctx, path)
			if ierr != nil {
				logger.Error("watch ingest failed", "path", path, "error", ierr)
				continue
			}
			if r.Deduplicated {
				logger.Info("watch ingest deduplicated", "path", path, "scoresheet_id", r.ScoresheetID)
				continue
			}
			id, perr := uuid.Parse(r.ScoresheetID)
			if perr != nil {
				logger.Error("watch ingest returned bad scoresheet id", "path", path, "scoresheet_id", r.ScoresheetID, "error", perr)
				continue
			}
			_ = queue.Enqueue(ctx, async.Job{ScoresheetID: id, SubmittedAt: time.Now()})
		}
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
