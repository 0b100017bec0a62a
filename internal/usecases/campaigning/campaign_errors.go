package campaigning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de campanhas
var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrInvalidPagination = errors.New("invalid pagination")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrNoteTextRequired  = errors.New("note text is required")
)

// AssemblyError indica que uma única campanha não pôde ser montada
type AssemblyError struct {
	Err        error
	CampaignID int64
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("campaign %d: %s", e.CampaignID, e.Err.Error())
}

func (e *AssemblyError) Unwrap() error {
	return e.Err
}
