package ui

// Status glyphs for non-interactive output.
const (
	SymbolOK          = "✓" // Inside the optimal band
	SymbolAlert       = "✗" // High or Low
	SymbolUnavailable = "○" // No defined maximum
	SymbolDefault     = "●" // Default machine marker
)
