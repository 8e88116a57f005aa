package handler

import (
	"fmt"

	"campus-market/internal/marketerrors"
)

// marketAuthErr is raised when a protected handler runs without the auth
// middleware having attached a caller identity.
var marketAuthErr = fmt.Errorf("handler: %w - missing caller identity", marketerrors.ErrInvalidToken)
