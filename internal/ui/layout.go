package ui

// Layout sizes.
const (
	// HeaderHeight is the number of rows used by the header and its rule.
	HeaderHeight = 2

	// FooterHeight is the number of rows used by the key hints.
	FooterHeight = 1

	// CardWidth is the outer width of one favorites card.
	CardWidth = 34

	// MaxContentWidth caps the details panel on wide terminals.
	MaxContentWidth = 96

	// CoverWidth is the outer width of the cover placeholder.
	CoverWidth = 44
)
