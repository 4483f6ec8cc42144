package main

import (
	"context"
	"crypto/tls"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"creator_studio/internal/database"
	"creator_studio/internal/global"
	"creator_studio/internal/logger"
	"creator_studio/internal/worker"
)

// initLogger khởi tạo hệ thống logging, phải chạy trước mọi thứ khác
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
}

// main_thread khởi tạo Fiber app và lắng nghe ở địa chỉ cấu hình.
// Bật ENABLE_TLS để phục vụ HTTPS với cert/key từ cấu hình.
// Context bị hủy (SIGINT/SIGTERM) thì server shutdown gracefully.
func main_thread(ctx context.Context) {
	log := logger.GetAppLogger()

	app := InitFiberApp()
	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	go func() {
		<-ctx.Done()
		log.Info("Shutdown signal received, stopping server...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Server shutdown error")
		}
	}()

	if cfg.EnableTLS {
		if cfg.TLSCertFile == "" || cfg.TLSKeyFile == "" {
			log.Fatal("ENABLE_TLS=true nhưng thiếu TLS_CERT_FILE hoặc TLS_KEY_FILE")
		}

		cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			log.Fatalf("Failed to load TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Failed to listen on %s: %v", address, err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}

		log.Infof("Server starting with TLS on %s", address)
		if err := app.Listener(tls.NewListener(ln, tlsConfig), fiber.ListenConfig{}); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	log.Infof("Server starting on %s", address)
	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func main() {
	initLogger()
	log := logger.GetAppLogger()

	InitGlobal()
	InitRegistry()
	InitDefaultData()

	cfg := global.MongoDB_ServerConfig
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Worker quét và đăng các publishing task đến hạn
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("Publishing scheduler worker crashed")
			}
		}()

		schedulerWorker, err := worker.NewPublishingSchedulerWorker(
			time.Duration(cfg.PublishSweepSeconds)*time.Second,
			int64(cfg.PublishSweepBatch),
		)
		if err != nil {
			log.WithError(err).Error("Failed to create publishing scheduler worker")
			return
		}
		schedulerWorker.Start(ctx)
	}()

	// Worker tự động hóa FVS cho các kênh bật semi_auto/full_auto
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("FVS auto worker crashed")
			}
		}()

		autoWorker, err := worker.NewFVSAutoWorker(time.Duration(cfg.FvsAutoMinutes) * time.Minute)
		if err != nil {
			log.WithError(err).Error("Failed to create FVS auto worker")
			return
		}
		autoWorker.Start(ctx)
	}()

	main_thread(ctx)

	if err := database.Disconnect(global.MongoDB_Session); err != nil {
		log.WithError(err).Error("Failed to close MongoDB connection")
	}
	log.Info("Server stopped")
}
