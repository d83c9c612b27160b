package missions

// CatalogError is a custom error type for mission catalog errors
type CatalogError string

// Error implements the error interface
func (e CatalogError) Error() string {
	return string(e)
}

const (
	ErrNoMissionAvailable CatalogError = "no mission available for place"
	ErrInvalidAmount      CatalogError = "mission amount must be positive"
	ErrInvalidDeduction   CatalogError = "mission deduction cannot be negative"
	ErrDuplicateMission   CatalogError = "duplicate mission id"
	ErrInvalidPlace       CatalogError = "mission has an unknown place"
	ErrInvalidDifficulty  CatalogError = "mission has an unknown difficulty"
	ErrMissingID          CatalogError = "mission id cannot be empty"
	ErrNilRoller          CatalogError = "roller cannot be nil"
)
