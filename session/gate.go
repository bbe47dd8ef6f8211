package session

import "net/http"

// PageFunc renders a protected page for a verified state.
type PageFunc func(w http.ResponseWriter, r *http.Request, state State)

// Gate guards dashboard pages.
type Gate struct {
	store     *Store
	loginPath string
}

func NewGate(store *Store, loginPath string) *Gate {
	return &Gate{store: store, loginPath: loginPath}
}

// Protect redirects unverified requests to the login page without running page.
func (g *Gate) Protect(page PageFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := g.store.Load(r)
		if !state.IsVerified() {
			w.Header().Set("Location", g.loginPath)
			w.WriteHeader(http.StatusSeeOther)
			return
		}
		page(w, r, state)
	}
}

// Middleware is Protect for plain handlers, used where a chi sub-router is gated as a whole.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return g.Protect(func(w http.ResponseWriter, r *http.Request, _ State) {
		next.ServeHTTP(w, r)
	})
}
