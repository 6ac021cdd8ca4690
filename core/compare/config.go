package compare

// DuplicatePolicy decides what a build does when the lookup table repeats an id.
type DuplicatePolicy string

const (
	// DuplicateFanOut emits one merged row per matching lookup row.
	DuplicateFanOut DuplicatePolicy = "fanout"
	// DuplicateReject fails the build with ErrDuplicateLookupID.
	DuplicateReject DuplicatePolicy = "reject"
)

// IsValid reports whether p is a known policy. The empty policy means fan-out.
func (p DuplicatePolicy) IsValid() bool {
	switch p {
	case "", DuplicateFanOut, DuplicateReject:
		return true
	default:
		return false
	}
}

// Config holds defaults for comparison builds and exports.
type Config struct {
	// DuplicatePolicy applies when a request does not choose one.
	DuplicatePolicy DuplicatePolicy `mapstructure:"duplicate_policy" default:"fanout"`
	// SheetName is the sheet of the merged comparison workbook.
	SheetName string `mapstructure:"sheet_name" default:"Merged"`
	// ExportPrefix is the object prefix used when archiving workbooks.
	ExportPrefix string `mapstructure:"export_prefix" default:"exports"`
}
