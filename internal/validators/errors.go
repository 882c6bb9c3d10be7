package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidField       = errors.New("invalid field")
	ErrStartInPast        = errors.New("booking start must be in the future")
	ErrEndInPast          = errors.New("booking end must be in the future")
	ErrStartNotBeforeEnd  = errors.New("booking start must be before end")
	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidPathID      = errors.New("invalid ID")
	ErrInvalidPagination  = errors.New("invalid pagination parameters")
	ErrInvalidApprovedArg = errors.New("approved must be true or false")
	ErrUnknownState       = errors.New("Unknown state")
)
