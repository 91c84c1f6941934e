package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/electron-shaders/sc2002-proj/internal/api"
	"github.com/electron-shaders/sc2002-proj/internal/clinical"
	"github.com/electron-shaders/sc2002-proj/internal/inventory"
	"github.com/electron-shaders/sc2002-proj/internal/scheduling"
	"github.com/electron-shaders/sc2002-proj/internal/seed"
	"github.com/electron-shaders/sc2002-proj/internal/staff"
	"github.com/electron-shaders/sc2002-proj/internal/store"
	"github.com/electron-shaders/sc2002-proj/pkg/config"
	"github.com/electron-shaders/sc2002-proj/pkg/logger"
	"github.com/electron-shaders/sc2002-proj/pkg/observer"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Initialize stores
	doctors := store.NewDoctorStore(logger)
	patients := store.NewPatientStore(logger)
	staffStore := store.NewStaffStore(logger)
	medicines := store.NewMedicineStore(logger)
	appointments := store.NewAppointmentStore(logger)
	outcomes := store.NewOutcomeRecordStore(logger)

	// Load seed data
	loader := seed.NewLoader(logger)
	if err := loader.LoadDoctors(cfg.Seed.DoctorsFile, doctors); err != nil {
		logger.WithError(err).Fatal("Failed to load doctor seed data")
	}
	if err := loader.LoadStaff(cfg.Seed.StaffFile, staffStore); err != nil {
		logger.WithError(err).Fatal("Failed to load staff seed data")
	}
	if err := loader.LoadPatients(cfg.Seed.PatientsFile, patients); err != nil {
		logger.WithError(err).Fatal("Failed to load patient seed data")
	}
	if err := loader.LoadMedicines(cfg.Seed.MedicinesFile, medicines); err != nil {
		logger.WithError(err).Fatal("Failed to load medicine seed data")
	}

	// The feed collects appointment and outcome notifications for dashboards
	feed := observer.NewFeed(200)

	// Initialize services
	schedulingSvc := scheduling.New(appointments, outcomes, doctors, patients, logger, feed)
	clinicalSvc := clinical.New(appointments, outcomes, doctors, patients, logger)
	inventorySvc := inventory.New(medicines, logger)
	staffSvc := staff.New(doctors, staffStore, logger)

	server := api.NewServer(api.Deps{
		Config:     cfg,
		Logger:     logger,
		Feed:       feed,
		Scheduling: schedulingSvc,
		Clinical:   clinicalSvc,
		Inventory:  inventorySvc,
		Staff:      staffSvc,
		Doctors:    doctors,
		Patients:   patients,
		StaffStore: staffStore,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Starting HMS server on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start HMS server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down HMS server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
	logger.Info("HMS server stopped")
}
