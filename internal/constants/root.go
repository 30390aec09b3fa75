package constants

const (
	AppName            = "stillday"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/stillday/stillday.db"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage keys for the two persisted records
	StorageKeyEntries  = "entries"
	StorageKeySettings = "settings"

	// MaxTasksPerDay caps a day entry's task list
	MaxTasksPerDay = 3

	// Field length caps, enforced by trimming before storage
	MaxTitleLen     = 80
	MaxNoteLen      = 150
	MaxIntentionLen = 200
	MaxWentWellLen  = 100
	MaxFeltHeavyLen = 200
	MaxGratitudeLen = 100

	// MaxWentWellItems caps the "went well" list in a reflection
	MaxWentWellItems = 3

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "stillday-"

	// Notify constants
	NotifierLockfileName   = "stillday-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.stillday"
)
