package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/CalvinOheneba/Feeding/app/config"
	"github.com/CalvinOheneba/Feeding/app/database"
	"github.com/CalvinOheneba/Feeding/app/ledger"
	"github.com/CalvinOheneba/Feeding/app/models"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 8:05 PM (20:05)
			if now.Hour() == 20 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [20:05]...")

				if err := LogDailyCollectionSummary(db); err != nil {
					log.Printf("Error logging daily collection summary: %v", err)
				}
			}
		}
	}()
}

// LogDailyCollectionSummary writes today's per-station collection figures
// to the log, giving an end-of-day paper trail without any extra storage.
func LogDailyCollectionSummary(db *sql.DB) error {
	today := models.Today()

	stations, err := database.GetAllStations(db)
	if err != nil {
		return err
	}
	students, err := database.GetAllStudents(db)
	if err != nil {
		return err
	}
	payments, err := database.GetPaymentsByDate(db, today)
	if err != nil {
		return err
	}

	total := 0.0
	for _, summary := range ledger.StationSummaries(stations, students, payments, today, config.UnitFee()) {
		log.Printf("Collection summary %s: %s %d/%d paid, %.2f collected",
			today, summary.StationName, summary.PaidCount, summary.TotalStudents, summary.TotalCollection)
		total += summary.TotalCollection
	}
	log.Printf("Collection summary %s: total %.2f", today, total)
	return nil
}
