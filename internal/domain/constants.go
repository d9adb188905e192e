package domain

const (
	MinScore = 0
	MaxScore = 10
)

const (
	DefaultExportFormat = "json"
	DefaultExportDir    = "."
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "console"
	ExportFilePrefix    = "ai_comparison"
	ExportDateLayout    = "20060102"
	EnvPrefix           = "AICOMPARE"
)

// DefaultLeaderCategories returns the categories shown on the leaders board.
func DefaultLeaderCategories() []string {
	return []string{"Writing", "Research", "Creative", "Analysis"}
}
