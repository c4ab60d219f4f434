package constants

const (
	AppName           = "habitflow"
	DefaultConfigPath = "~/.config/habitflow/habitflow.db"
	Version           = "v0.2.0"

	// DefaultFreezes is the freeze budget assigned to newly created habits.
	DefaultFreezes = 3

	// StreakScanDays bounds the backward streak scan. Streaks longer than
	// this are not representable; see Registry docs.
	StreakScanDays = 365

	// WeeklyWindowDays and MonthlyWindowDays are the two series lengths the
	// CLI exposes. The aggregator itself accepts any window size.
	WeeklyWindowDays  = 7
	MonthlyWindowDays = 30

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitflow-"
	BackupFileSuffix = ".db"

	// Settings keys
	SettingTimezone        = "timezone"
	SettingDefaultFreezes  = "default_freezes"
	SettingFreezesProtect  = "freezes_protect_streaks"
	DefaultTimezone        = "Local"
	DefaultFreezesProtect  = false
)
