package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	"github.com/giancarlo349/G-OS3/internal/usecase/interfaces"
)

var (
	ErrSessionNotFound = errors.New("editor session not found")
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrRemoteWrite     = errors.New("store rejected the write")
)

const quotesCollection = "quotes"

// IEditorUseCase drives one quote draft per open session: header edits, the
// item operations, the verification walkthrough, in-list navigation, catalog
// suggestions and the save-back to the quote store.

type IEditorUseCase interface {
	Open(ctx context.Context, user entities.User, quoteID string) (EditorSnapshot, error)
	Close(ctx context.Context, user entities.User, sessionID string) error
	Snapshot(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error)

	SetHeader(ctx context.Context, user entities.User, sessionID string, p HeaderPatch) (EditorSnapshot, error)
	AddItem(ctx context.Context, user entities.User, sessionID, description string, price float64) (EditorSnapshot, error)
	AddFromCatalog(ctx context.Context, user entities.User, sessionID, productID string) (EditorSnapshot, error)
	UpdateItem(ctx context.Context, user entities.User, sessionID, itemID string, p ItemPatch) (EditorSnapshot, error)
	MarkForDeletion(ctx context.Context, user entities.User, sessionID, itemID string) (EditorSnapshot, error)
	CancelDelete(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error)
	ConfirmDelete(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error)
	MoveItem(ctx context.Context, user entities.User, sessionID string, from, to int) (EditorSnapshot, error)

	StartAudit(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error)
	ApproveFocused(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error)
	SkipFocused(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error)
	StopAudit(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error)

	SetFilter(ctx context.Context, user entities.User, sessionID, filter string) (EditorSnapshot, error)
	NextMatch(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error)
	PreviousMatch(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error)

	Save(ctx context.Context, user entities.User, sessionID string, silent bool) (string, error)
}

type EditorUseCase struct {
	sessions *SessionStore
	quotes   interfaces.IQuoteRepository
	products interfaces.IProductRepository
	notifier interfaces.IChangeNotifier
}

var _ IEditorUseCase = (*EditorUseCase)(nil)

func NewEditorUseCase(sessions *SessionStore, quotes interfaces.IQuoteRepository, products interfaces.IProductRepository, notifier interfaces.IChangeNotifier) *EditorUseCase {
	return &EditorUseCase{sessions: sessions, quotes: quotes, products: products, notifier: notifier}
}

// Open starts a session from an existing quote (edit mode) or from empty
// defaults (create mode). Quotes belonging to another operator are treated
// as not found.
func (u *EditorUseCase) Open(ctx context.Context, user entities.User, quoteID string) (EditorSnapshot, error) {
	quoteID = strings.TrimSpace(quoteID)
	var q *entities.Quote
	if quoteID != "" {
		loaded, err := u.quotes.GetByID(ctx, quoteID)
		if err != nil {
			return EditorSnapshot{}, err
		}
		if loaded.ID == "" || loaded.UserID != user.UID {
			return EditorSnapshot{}, ErrQuoteNotFound
		}
		q = &loaded
	}
	e := newQuoteEditor(uuid.NewString(), user, q)
	u.sessions.Put(e)
	return e.Snapshot(), nil
}

func (u *EditorUseCase) Close(ctx context.Context, user entities.User, sessionID string) error {
	if _, err := u.session(user, sessionID); err != nil {
		return err
	}
	u.sessions.Delete(sessionID)
	return nil
}

func (u *EditorUseCase) Snapshot(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	return e.Snapshot(), nil
}

func (u *EditorUseCase) SetHeader(ctx context.Context, user entities.User, sessionID string, p HeaderPatch) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	e.SetHeader(p)
	return e.Snapshot(), nil
}

func (u *EditorUseCase) AddItem(ctx context.Context, user entities.User, sessionID, description string, price float64) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	e.AddItem(description, price)
	return e.Snapshot(), nil
}

// AddFromCatalog adds a line pre-filled from a catalog product. The copied
// price is a point-in-time value; later catalog edits never touch the item.
func (u *EditorUseCase) AddFromCatalog(ctx context.Context, user entities.User, sessionID, productID string) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	p, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	if p.ID == "" || p.UserID != user.UID {
		return EditorSnapshot{}, ErrProductNotFound
	}
	e.AddItem(p.Description, p.Price)
	return e.Snapshot(), nil
}

func (u *EditorUseCase) UpdateItem(ctx context.Context, user entities.User, sessionID, itemID string, p ItemPatch) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	e.UpdateItem(itemID, p)
	return e.Snapshot(), nil
}

func (u *EditorUseCase) MarkForDeletion(ctx context.Context, user entities.User, sessionID, itemID string) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	if err := e.MarkForDeletion(itemID); err != nil {
		return EditorSnapshot{}, err
	}
	return e.Snapshot(), nil
}

func (u *EditorUseCase) CancelDelete(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	e.CancelDelete()
	return e.Snapshot(), nil
}

func (u *EditorUseCase) ConfirmDelete(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	if err := e.ConfirmDelete(); err != nil {
		return EditorSnapshot{}, err
	}
	return e.Snapshot(), nil
}

func (u *EditorUseCase) MoveItem(ctx context.Context, user entities.User, sessionID string, from, to int) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	if err := e.MoveItem(from, to); err != nil {
		return EditorSnapshot{}, err
	}
	return e.Snapshot(), nil
}

func (u *EditorUseCase) StartAudit(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	e.StartAudit()
	return e.Snapshot(), nil
}

func (u *EditorUseCase) ApproveFocused(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	if err := e.ApproveFocused(); err != nil {
		return EditorSnapshot{}, err
	}
	return e.Snapshot(), nil
}

func (u *EditorUseCase) SkipFocused(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	if err := e.SkipFocused(); err != nil {
		return EditorSnapshot{}, err
	}
	return e.Snapshot(), nil
}

func (u *EditorUseCase) StopAudit(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	e.StopAudit()
	return e.Snapshot(), nil
}

func (u *EditorUseCase) SetFilter(ctx context.Context, user entities.User, sessionID, filter string) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	e.SetFilter(filter)
	return e.Snapshot(), nil
}

func (u *EditorUseCase) NextMatch(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	e.NextMatch()
	return e.Snapshot(), nil
}

func (u *EditorUseCase) PreviousMatch(ctx context.Context, user entities.User, sessionID string) (EditorSnapshot, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	e.PreviousMatch()
	return e.Snapshot(), nil
}

// Save validates and upserts the whole record. A new draft gets a generated
// key and CreatedAt=now; an existing one is fully overwritten, keeping its
// original CreatedAt, with UpdatedAt refreshed. On store failure the
// in-memory draft is left untouched and the operator may retry. silent=true
// keeps the session open so a document can be generated right after; a
// regular save closes the session.
func (u *EditorUseCase) Save(ctx context.Context, user entities.User, sessionID string, silent bool) (string, error) {
	e, err := u.session(user, sessionID)
	if err != nil {
		return "", err
	}

	q, err := e.beginSave(time.Now().UTC())
	if err != nil {
		return "", err
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}

	saved, err := u.quotes.Save(ctx, q)
	if err != nil {
		e.abortSave()
		log.Printf("[editor][usecase] save failed session=%s quote=%s err=%v", sessionID, q.ID, err)
		return "", errors.Join(ErrRemoteWrite, err)
	}
	e.commitSave(saved)

	if err := u.notifier.Publish(ctx, quotesCollection); err != nil {
		log.Printf("[editor][usecase] change publish failed collection=%s err=%v", quotesCollection, err)
	}

	if !silent {
		u.sessions.Delete(sessionID)
	}
	return saved.ID, nil
}

// session resolves and authorizes one open draft. Sessions opened by another
// operator are invisible.
func (u *EditorUseCase) session(user entities.User, sessionID string) (*QuoteEditor, error) {
	e, ok := u.sessions.Get(strings.TrimSpace(sessionID))
	if !ok || e.User().UID != user.UID {
		return nil, ErrSessionNotFound
	}
	return e, nil
}
