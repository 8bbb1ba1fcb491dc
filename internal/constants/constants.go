package constants

const (
	AppName           = "habitlog"
	DefaultConfigDir  = "~/.config/habitlog"
	DefaultConfigPath = "~/.config/habitlog/habitlog.db"
	Version           = "v0.3.0"

	// DateFormat is the storage and input date format (YYYY-MM-DD).
	// Lexical order of this format matches chronological order.
	DateFormat = "2006-01-02"

	// EarlyExitInput typed at any prompt abandons the current flow
	EarlyExitInput = "0"

	// Record dates older than this many years are rejected
	MaxRecordAgeYears = 1

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitlog-"
	BackupFileSuffix = ".db"

	// Seed constants
	SeedRecordCount = 100
	SeedMinQuantity = 1
	SeedMaxQuantity = 2000

	// Table names
	TableHabits  = "habits"
	TableRecords = "records"
)
