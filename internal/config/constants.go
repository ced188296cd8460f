package config

const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./workout.db"

	// DefaultTasksDatabasePath is where the task queue lives when the main
	// store is PostgreSQL
	DefaultTasksDatabasePath = "./workout-tasks.db"

	// DefaultAllowedOrigin is the web client allowed by CORS out of the box
	DefaultAllowedOrigin = "https://zwrk.netlify.app"
)
