package auth

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	authmw "github.com/studyaide/studyaide-backend/internal/auth/middleware"
)

const guestPrefix = "guest|"

// IsGuest reports whether an identity belongs to an anonymous guest.
func IsGuest(userID string) bool {
	return userID == "" || strings.HasPrefix(userID, guestPrefix)
}

// GuestLoginHandler mints a throwaway guest identity and issues a JWT for
// it. Guests get the guest role and are subject to the usage limiter.
func GuestLoginHandler(a *authmw.AuthService, db *sql.DB, enabled bool) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		Username    string `json:"username"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !enabled {
			http.Error(w, "guest auth disabled", http.StatusForbidden)
			return
		}

		sfx := strconv.FormatInt(time.Now().UnixNano(), 36)
		userID := guestPrefix + sfx
		username := "guest-" + sfx[len(sfx)-6:]

		_, _ = db.ExecContext(r.Context(),
			`INSERT INTO users (id, username, role, created_at) VALUES ($1,$2,$3,$4)`,
			userID, username, "guest", time.Now().Unix())

		tok, err := a.IssueJWT(userID, username, "guest")
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: username})
	}
}
