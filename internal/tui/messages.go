package tui

import (
	"github.com/MKhiriev/go-pass-autofill/internal/fill"
	"github.com/MKhiriev/go-pass-autofill/models"
)

type candidatesLoadedMsg struct {
	query      string
	candidates []models.LoginCandidate
	err        error
}

type fillDoneMsg struct {
	filled []string
	err    error
}

type copiedMsg struct {
	field string
	err   error
}

type detailLoadedMsg struct {
	credential models.Credential
	err        error
}

type clearStatusMsg struct{}

// foreignPromptMsg asks the picker to show the foreign-frame fill
// confirmation overlay for one pending decision.
type foreignPromptMsg struct {
	decision      *fill.PendingDecision
	login         string
	foreignOrigin string
}
