package response

import (
	"github.com/giancarlo349/G-OS3/internal/usecase"
)

// EditorSnapshotResponse mirrors the full draft state after every editor
// operation; the client renders from it without local bookkeeping.
type EditorSnapshotResponse struct {
	SessionID       string              `json:"session_id"`
	QuoteID         string              `json:"quote_id,omitempty"`
	ClientName      string              `json:"client_name"`
	ClientPhone     string              `json:"client_phone,omitempty"`
	Author          string              `json:"author"`
	Status          string              `json:"status"`
	Items           []QuoteItemResponse `json:"items"`
	Total           float64             `json:"total"`
	Health          int                 `json:"health"`
	PendingDeleteID string              `json:"pending_delete_id,omitempty"`
	AuditActive     bool                `json:"audit_active"`
	AuditIndex      int                 `json:"audit_index"`
	AuditItemID     string              `json:"audit_item_id,omitempty"`
	Filter          string              `json:"filter,omitempty"`
	MatchCount      int                 `json:"match_count"`
	MatchIndex      int                 `json:"match_index"`
	CurrentMatchID  string              `json:"current_match_id,omitempty"`
	Saving          bool                `json:"saving"`
}

// SaveResponse carries the key the quote was stored under.
type SaveResponse struct {
	QuoteID string `json:"quote_id"`
}

func FromEditorSnapshot(s usecase.EditorSnapshot) EditorSnapshotResponse {
	return EditorSnapshotResponse{
		SessionID:       s.SessionID,
		QuoteID:         s.QuoteID,
		ClientName:      s.ClientName,
		ClientPhone:     s.ClientPhone,
		Author:          s.Author,
		Status:          string(s.Status),
		Items:           fromQuoteItems(s.Items),
		Total:           s.Total,
		Health:          s.Health,
		PendingDeleteID: s.PendingDeleteID,
		AuditActive:     s.AuditActive,
		AuditIndex:      s.AuditIndex,
		AuditItemID:     s.AuditItemID,
		Filter:          s.Filter,
		MatchCount:      len(s.Matches),
		MatchIndex:      s.MatchIndex,
		CurrentMatchID:  s.CurrentMatchID,
		Saving:          s.Saving,
	}
}
