package store

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/infra/session"
)

// CookieCarrier is the slice of the HTTP client the persistor needs:
// exporting and seeding the credentialed cookie session.
type CookieCarrier interface {
	Cookies() []*http.Cookie
	SetCookies(cookies []*http.Cookie)
}

// GuestCartCookieName carries the guest cart identity. The server mints
// one on the first cart call; restoring it across processes keeps the
// guest cart stable.
const GuestCartCookieName = "cart_session"

// Persistor keeps the session snapshot in step with the stores that
// feed it. Identity, addresses and the auth cookies persist; catalog,
// cart and order state are refetched from the API on startup.
type Persistor struct {
	session   *session.Manager
	users     *UserStore
	addresses *AddressStore
	cookies   CookieCarrier
	guestID   string
	logger    *slog.Logger
}

func NewPersistor(manager *session.Manager, users *UserStore, addresses *AddressStore, cookies CookieCarrier, logger *slog.Logger) *Persistor {
	return &Persistor{
		session:   manager,
		users:     users,
		addresses: addresses,
		cookies:   cookies,
		logger:    logger,
	}
}

// Attach subscribes the persistor to the dispatcher.
func (p *Persistor) Attach(events *Dispatcher) {
	events.Subscribe(p.Handle)
}

// Restore seeds the stores from the persisted snapshot, minting a guest
// session ID when the snapshot has none.
func (p *Persistor) Restore(ctx context.Context) error {
	state, err := p.session.Load(ctx)
	if err != nil {
		return err
	}

	if state.GuestSessionID == "" {
		state.GuestSessionID = session.NewGuestSessionID()
	}
	p.guestID = state.GuestSessionID

	p.users.Restore(state.User)
	p.addresses.Restore(state.Addresses)
	if p.cookies != nil {
		if len(state.Cookies) > 0 {
			p.cookies.SetCookies(state.Cookies)
		}
		p.seedGuestCookie()
	}

	return nil
}

// seedGuestCookie hands the persisted guest identity to the HTTP client
// when the jar does not already carry a server-set one.
func (p *Persistor) seedGuestCookie() {
	for _, cookie := range p.cookies.Cookies() {
		if cookie.Name == GuestCartCookieName {
			p.guestID = cookie.Value
			return
		}
	}
	p.cookies.SetCookies([]*http.Cookie{{Name: GuestCartCookieName, Value: p.guestID}})
}

// GuestSessionID returns the identifier restored or minted at startup.
func (p *Persistor) GuestSessionID() string {
	return p.guestID
}

// Handle reacts to successful identity or address operations by writing
// a fresh snapshot. Failures change nothing worth persisting.
func (p *Persistor) Handle(event Event) {
	if event.Err != nil {
		return
	}
	if event.Store != StoreUser && event.Store != StoreAddress {
		return
	}

	userState := p.users.State()
	addressState := p.addresses.State()

	snapshot := &session.State{
		User:           userState.User,
		Addresses:      addressState.Addresses,
		GuestSessionID: p.guestID,
	}
	if p.cookies != nil {
		snapshot.Cookies = p.cookies.Cookies()
	}
	if err := p.session.Save(context.Background(), snapshot); err != nil {
		p.logger.Warn("save session snapshot", slog.Any("error", err))
	}
}
