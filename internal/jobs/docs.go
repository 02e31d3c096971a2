// Package jobs provides scheduled background tasks for the console.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SessionCleanupJob - Runs every minute to purge expired console sessions
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sessionStore, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// Deliberately absent: there is no order polling job. Order state only changes
// through explicit user actions and refreshes, so the console never polls the
// order service in the background.
package jobs
