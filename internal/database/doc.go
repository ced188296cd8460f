// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, owner seeding
//	├── errors.go        # Driver-neutral constraint error checks
//	├── scopes.go        # Preload scopes for exercise/tag shaping
//	├── users/           # User CRUD
//	├── exercises/       # Exercise CRUD (with tags preloaded)
//	├── tags/            # Tag CRUD (with exercises preloaded)
//	├── sets/            # Set CRUD
//	├── exercisetags/    # Exercise-tag links, backs associations.Store
//	└── audit/           # Audit event persistence and retention
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase("./workout.db")
//
//	exercisesRepo := exercises.NewRepository(db.DB)
//	tagsRepo := tags.NewRepository(db.DB)
//
//	exercise, err := exercisesRepo.GetByID(ctx, 12)
//
// # Store rules
//
// SQLite connections are opened with foreign keys on, so deleting a user,
// exercise or tag removes its dependents in the same statement. GORM runs
// with TranslateError, which turns unique and foreign key violations into
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Implement the required interface
//  5. Add compile-time interface check in internal/interfaces
package database
