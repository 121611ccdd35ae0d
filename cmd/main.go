package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	advanceTimeHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/advance_time"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_available_slots"
	parkVehicleHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/park_vehicle"
	unparkVehicleHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/unpark_vehicle"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	facilityService "github.com/m04kA/SMC-ParkingService/internal/service/facility"
	ratesService "github.com/m04kA/SMC-ParkingService/internal/service/rates"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем сервис тарификации
	rates := ratesService.NewService(ratesService.Schedule{
		FlatAmount:   cfg.Rates.FlatAmount,
		FlatHours:    cfg.Rates.FlatHours,
		PerDayAmount: cfg.Rates.PerDayAmount,
		HoursPerDay:  cfg.Rates.HoursPerDay,
		Hourly: map[domain.SlotSize]float64{
			domain.SlotSmall:  cfg.Rates.HourlySmall,
			domain.SlotMedium: cfg.Rates.HourlyMedium,
			domain.SlotLarge:  cfg.Rates.HourlyLarge,
		},
	})

	// Инициализируем сервис парковки
	// metricsCollector == nil означает выключенные доменные метрики
	var facilityMetrics facilityService.MetricsRecorder
	if metricsCollector != nil {
		facilityMetrics = metricsCollector
	}

	facility, err := facilityService.NewService(cfg.Facility.EntryPoints, rates, facilityMetrics, log)
	if err != nil {
		log.Fatal("Failed to create facility: %v", err)
	}

	// Регистрируем стартовую разметку слотов
	slots, err := cfg.DomainSlots()
	if err != nil {
		log.Fatal("Invalid slot layout in config: %v", err)
	}
	if err := facility.RegisterSlots(slots); err != nil {
		log.Fatal("Failed to register slots: %v", err)
	}
	log.Info("Facility initialized: %d entry points, %d slots", cfg.Facility.EntryPoints, len(slots))

	// Инициализируем handlers
	parkVehicle := parkVehicleHandler.NewHandler(facility, log)
	unparkVehicle := unparkVehicleHandler.NewHandler(facility, log)
	advanceTime := advanceTimeHandler.NewHandler(facility, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(facility, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Парковка и выезд
	api.HandleFunc("/vehicles/park", parkVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{vehicleId}/unpark", unparkVehicle.Handle).Methods(http.MethodPost)

	// Логические часы
	api.HandleFunc("/time/advance", advanceTime.Handle).Methods(http.MethodPost)

	// Свободные слоты
	api.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
