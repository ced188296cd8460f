// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - UserStore, ExerciseStore, TagStore, SetStore: entity CRUD (internal/http)
//   - associations.Store: existence checks and link rows inside a transaction
//     (internal/associations/store.go)
//
// ## Tagging and Audit Interfaces
//
//   - TagLinker: add and remove exercise-tag links (internal/http/exercises.go)
//   - associations.Auditor: records link changes (internal/associations/store.go)
//   - DeleteAuditor, AuditReader: entity removals and the event feed
//     (internal/http/stores.go)
//
// ## Background Work Interfaces
//
//   - AuditEventCleaner: retention sweep run by the task queue
//     (internal/tasks/cleanup_audit.go)
//   - AuditCleanupEnqueuer, TaskStatusReader, scheduler.CleanupEnqueuer:
//     queue access for HTTP handlers and the cron scheduler
//
// # Adding a New Entity
//
//  1. Add the model to internal/entities and to the migration list in
//     internal/database/database.go
//
//  2. Create a repository sub-package:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Declare the store interface next to the controller in internal/http
//     and register routes in router.go
//
//  4. Add a compile-time check:
//
//     var _ http.WorkoutStore = (*workouts.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
