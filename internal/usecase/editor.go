package usecase

import (
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
)

var (
	ErrClientNameRequired = errors.New("client name required")
	ErrEditorItemNotFound = errors.New("item not found in draft")
	ErrInvalidPosition    = errors.New("invalid item position")
	ErrNoDeletePending    = errors.New("no item marked for deletion")
	ErrAuditActive        = errors.New("operation not allowed while verification is active")
	ErrAuditInactive      = errors.New("verification is not active")
	ErrSaveInFlight       = errors.New("save already in progress")
)

// auditCursor is the verification walkthrough state: either inactive, or
// focused on exactly one item index. While active the editor rejects any
// operation that could invalidate the focus index (reorder, delete), so the
// index is kept valid by construction rather than clamped after the fact.
type auditCursor struct {
	active bool
	focus  int
}

// ItemPatch carries a partial update for one line item. Nil fields are left
// untouched; any subset may be set independently.
type ItemPatch struct {
	Description *string
	Price       *float64
	Quantity    *float64
	Comment     *string
	IsVerified  *bool
}

// HeaderPatch carries a partial update for the quote header fields.
type HeaderPatch struct {
	ClientName  *string
	ClientPhone *string
	Author      *string
	Status      *entities.QuoteStatus
}

// QuoteEditor owns the mutable draft of one quote: header fields, the
// ordered item list, the delete-confirmation gate, the verification cursor
// and the in-list match navigation. Totals and health are derived on read,
// never stored. All persistence goes through EditorUseCase.
//
// Every exported method locks; the editor is safe for the discrete,
// user-triggered events it was built for.
type QuoteEditor struct {
	mu sync.Mutex

	sessionID string
	user      entities.User

	quoteID   string
	createdAt time.Time

	clientName  string
	clientPhone string
	author      string
	status      entities.QuoteStatus
	items       []entities.QuoteItem

	pendingDeleteID string
	audit           auditCursor
	saving          bool

	filter     string
	matches    []string
	matchIndex int
}

// EditorSnapshot is the read view of a draft handed back after every
// operation. CurrentMatchID doubles as the scroll-into-view request.
type EditorSnapshot struct {
	SessionID       string
	QuoteID         string
	ClientName      string
	ClientPhone     string
	Author          string
	Status          entities.QuoteStatus
	Items           []entities.QuoteItem
	Total           float64
	Health          int
	PendingDeleteID string
	AuditActive     bool
	AuditIndex      int
	AuditItemID     string
	Filter          string
	Matches         []string
	MatchIndex      int
	CurrentMatchID  string
	Saving          bool
}

func newQuoteEditor(sessionID string, user entities.User, q *entities.Quote) *QuoteEditor {
	e := &QuoteEditor{
		sessionID: sessionID,
		user:      user,
		status:    entities.QuoteStatusPendente,
		author:    mailboxName(user.Email),
	}
	if q != nil {
		e.quoteID = q.ID
		e.createdAt = q.CreatedAt
		e.clientName = q.ClientName
		e.clientPhone = q.ClientPhone
		if q.Author != "" {
			e.author = q.Author
		}
		if q.Status != "" {
			e.status = q.Status
		}
		e.items = append(e.items, q.Items...)
	}
	return e
}

// mailboxName is the default author: the operator's email up to the "@".
func mailboxName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func (e *QuoteEditor) SessionID() string { return e.sessionID }

func (e *QuoteEditor) User() entities.User { return e.user }

// SetHeader merges the given header fields into the draft.
func (e *QuoteEditor) SetHeader(p HeaderPatch) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if p.ClientName != nil {
		e.clientName = strings.ToUpper(*p.ClientName)
	}
	if p.ClientPhone != nil {
		e.clientPhone = *p.ClientPhone
	}
	if p.Author != nil {
		e.author = strings.ToUpper(*p.Author)
	}
	if p.Status != nil {
		e.status = *p.Status
	}
}

// AddItem appends a new line with quantity 1 and a fresh draft-local id.
// An empty description is a silent no-op, mirroring the entry form which
// simply ignores the add gesture with nothing typed.
func (e *QuoteEditor) AddItem(description string, price float64) {
	description = strings.TrimSpace(description)
	if description == "" {
		return
	}
	if price < 0 {
		price = 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = append(e.items, entities.QuoteItem{
		ID:          uuid.NewString(),
		Description: strings.ToUpper(description),
		Price:       price,
		Quantity:    1,
		IsVerified:  false,
	})
	e.refreshMatches()
}

// UpdateItem merges the patch into the matching item; unknown ids are a
// no-op. Negative prices and quantities are floored at zero.
func (e *QuoteEditor) UpdateItem(id string, p ItemPatch) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.items {
		if e.items[i].ID != id {
			continue
		}
		if p.Description != nil {
			e.items[i].Description = strings.ToUpper(*p.Description)
		}
		if p.Price != nil {
			e.items[i].Price = max(*p.Price, 0)
		}
		if p.Quantity != nil {
			e.items[i].Quantity = max(*p.Quantity, 0)
		}
		if p.Comment != nil {
			e.items[i].Comment = *p.Comment
		}
		if p.IsVerified != nil {
			e.items[i].IsVerified = *p.IsVerified
		}
		e.refreshMatches()
		return
	}
}

// MarkForDeletion is the first half of the two-step delete: it records the
// intent without mutating the item list.
func (e *QuoteEditor) MarkForDeletion(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.audit.active {
		return ErrAuditActive
	}
	if e.indexOf(id) < 0 {
		return ErrEditorItemNotFound
	}
	e.pendingDeleteID = id
	return nil
}

// CancelDelete clears a pending delete intent.
func (e *QuoteEditor) CancelDelete() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pendingDeleteID = ""
}

// ConfirmDelete removes the item marked by MarkForDeletion. Only this
// second step mutates the list.
func (e *QuoteEditor) ConfirmDelete() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.audit.active {
		return ErrAuditActive
	}
	if e.pendingDeleteID == "" {
		return ErrNoDeletePending
	}
	idx := e.indexOf(e.pendingDeleteID)
	e.pendingDeleteID = ""
	if idx < 0 {
		return ErrEditorItemNotFound
	}
	e.items = append(e.items[:idx], e.items[idx+1:]...)
	e.refreshMatches()
	return nil
}

// MoveItem splices the item at from out of the list and re-inserts it at
// to. The drag gesture calls this on every position crossing, not only on
// drop.
func (e *QuoteEditor) MoveItem(from, to int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.audit.active {
		return ErrAuditActive
	}
	if from < 0 || from >= len(e.items) || to < 0 || to >= len(e.items) {
		return ErrInvalidPosition
	}
	if from == to {
		return nil
	}
	it := e.items[from]
	e.items = append(e.items[:from], e.items[from+1:]...)
	e.items = append(e.items[:to], append([]entities.QuoteItem{it}, e.items[to:]...)...)
	e.refreshMatches()
	return nil
}

// StartAudit begins the walkthrough at the first item. With an empty draft
// there is nothing to walk, so it stays inactive.
func (e *QuoteEditor) StartAudit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.items) == 0 {
		return
	}
	e.audit = auditCursor{active: true, focus: 0}
}

// ApproveFocused marks the focused item verified and advances the cursor;
// approving the last item ends the walkthrough.
func (e *QuoteEditor) ApproveFocused() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.audit.active {
		return ErrAuditInactive
	}
	e.items[e.audit.focus].IsVerified = true
	e.advanceAudit()
	return nil
}

// SkipFocused advances the cursor without touching the verification flag.
func (e *QuoteEditor) SkipFocused() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.audit.active {
		return ErrAuditInactive
	}
	e.advanceAudit()
	return nil
}

// StopAudit ends the walkthrough at any point, keeping flags already set.
func (e *QuoteEditor) StopAudit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.audit = auditCursor{}
}

func (e *QuoteEditor) advanceAudit() {
	if e.audit.focus >= len(e.items)-1 {
		e.audit = auditCursor{}
		return
	}
	e.audit.focus++
}

// SetFilter recomputes the in-list matches. Filters of length <= 1 clear
// the match set.
func (e *QuoteEditor) SetFilter(filter string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter = filter
	e.refreshMatches()
}

// NextMatch cyclically advances the current match and returns the item id
// to scroll into view, or "" when there are no matches.
func (e *QuoteEditor) NextMatch() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.matches) == 0 {
		return ""
	}
	e.matchIndex++
	if e.matchIndex >= len(e.matches) {
		e.matchIndex = 0
	}
	return e.matches[e.matchIndex]
}

// PreviousMatch cyclically retreats the current match.
func (e *QuoteEditor) PreviousMatch() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.matches) == 0 {
		return ""
	}
	e.matchIndex--
	if e.matchIndex < 0 {
		e.matchIndex = len(e.matches) - 1
	}
	return e.matches[e.matchIndex]
}

// refreshMatches rebuilds the ordered match list and resets the cursor to
// the first match, exactly as the list view does whenever the filter or the
// items change. The length guard counts runes so a single accented character
// does not arm the filter. Callers must hold the lock.
func (e *QuoteEditor) refreshMatches() {
	if utf8.RuneCountInString(e.filter) <= 1 {
		e.matches = nil
		e.matchIndex = 0
		return
	}
	needle := strings.ToLower(e.filter)
	matches := make([]string, 0, len(e.items))
	for _, it := range e.items {
		if strings.Contains(strings.ToLower(it.Description), needle) {
			matches = append(matches, it.ID)
		}
	}
	e.matches = matches
	e.matchIndex = 0
}

func (e *QuoteEditor) indexOf(id string) int {
	for i := range e.items {
		if e.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Snapshot returns the full read view including derived totals.
func (e *QuoteEditor) Snapshot() EditorSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *QuoteEditor) snapshotLocked() EditorSnapshot {
	items := make([]entities.QuoteItem, len(e.items))
	copy(items, e.items)
	s := EditorSnapshot{
		SessionID:       e.sessionID,
		QuoteID:         e.quoteID,
		ClientName:      e.clientName,
		ClientPhone:     e.clientPhone,
		Author:          e.author,
		Status:          e.status,
		Items:           items,
		Total:           entities.ItemsTotal(items),
		Health:          entities.ItemsHealth(items),
		PendingDeleteID: e.pendingDeleteID,
		AuditActive:     e.audit.active,
		Filter:          e.filter,
		Matches:         append([]string(nil), e.matches...),
		MatchIndex:      e.matchIndex,
		Saving:          e.saving,
	}
	if e.audit.active {
		s.AuditIndex = e.audit.focus
		s.AuditItemID = e.items[e.audit.focus].ID
	}
	if len(e.matches) > 0 {
		s.CurrentMatchID = e.matches[e.matchIndex]
	}
	return s
}

// beginSave validates the draft and flips the saving gate, handing back the
// record that should be written. The draft itself is not mutated; commitSave
// applies the assigned id and timestamps only after the store accepted the
// write.
func (e *QuoteEditor) beginSave(now time.Time) (entities.Quote, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.saving {
		return entities.Quote{}, ErrSaveInFlight
	}
	if strings.TrimSpace(e.clientName) == "" {
		return entities.Quote{}, ErrClientNameRequired
	}
	items := make([]entities.QuoteItem, len(e.items))
	copy(items, e.items)
	q := entities.Quote{
		ID:          e.quoteID,
		ClientName:  strings.ToUpper(e.clientName),
		ClientPhone: e.clientPhone,
		Author:      strings.ToUpper(e.author),
		Status:      e.status,
		Items:       items,
		Total:       entities.ItemsTotal(items),
		CreatedAt:   e.createdAt,
		UpdatedAt:   now,
		UserID:      e.user.UID,
	}
	if q.ID == "" {
		q.CreatedAt = now
	}
	e.saving = true
	return q, nil
}

func (e *QuoteEditor) commitSave(q entities.Quote) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.quoteID = q.ID
	e.createdAt = q.CreatedAt
	e.saving = false
}

func (e *QuoteEditor) abortSave() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.saving = false
}
