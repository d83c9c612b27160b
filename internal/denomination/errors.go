package denomination

// CatalogError is a custom error type for denomination catalog errors
type CatalogError string

// Error implements the error interface
func (e CatalogError) Error() string {
	return string(e)
}

const (
	ErrEmptyCatalog        CatalogError = "denomination catalog is empty"
	ErrDuplicateKey        CatalogError = "duplicate denomination key"
	ErrInvalidFaceValue    CatalogError = "denomination face value must be positive"
	ErrUnknownDenomination CatalogError = "unknown denomination"
	ErrNegativeCount       CatalogError = "starting wallet count cannot be negative"
)
