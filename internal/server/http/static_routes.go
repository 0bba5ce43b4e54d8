package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

const viewCookieName = "chessmm_view"

// RegisterStaticRoutes mounts:
// - /web/*        -> desktop assets
// - /web_mobile/* -> mobile assets
// - /             -> auto redirect by view override/cookie/User-Agent
func RegisterStaticRoutes(r chi.Router, desktopDir string, mobileDir string) {
	if r == nil {
		return
	}
	if desktopDir == "" {
		desktopDir = "."
	}
	if mobileDir == "" {
		mobileDir = desktopDir
	}

	r.Handle("/web/*", http.StripPrefix("/web/", http.FileServer(http.Dir(desktopDir))))
	r.Handle("/web_mobile/*", http.StripPrefix("/web_mobile/", http.FileServer(http.Dir(mobileDir))))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		target := "/web/"
		if pickView(w, r) == viewMobile {
			target = "/web_mobile/"
		}
		w.Header().Set("Vary", "User-Agent, Cookie")
		http.Redirect(w, r, target, http.StatusFound)
	})
	r.Get("/web", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/web/", http.StatusFound)
	})
	r.Get("/web_mobile", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/web_mobile/", http.StatusFound)
	})
}

// pickView resolves ?view=, then the remembered cookie, then the User-Agent.
func pickView(w http.ResponseWriter, r *http.Request) string {
	if v, ok := normalizeView(r.URL.Query().Get("view")); ok {
		http.SetCookie(w, &http.Cookie{
			Name:     viewCookieName,
			Value:    v,
			Path:     "/",
			MaxAge:   int((30 * 24 * time.Hour).Seconds()),
			SameSite: http.SameSiteLaxMode,
		})
		return v
	}
	if c, err := r.Cookie(viewCookieName); err == nil {
		if v, ok := normalizeView(c.Value); ok {
			return v
		}
	}
	if isMobileUA(r.UserAgent()) {
		return viewMobile
	}
	return viewDesktop
}

const (
	viewDesktop = "web"
	viewMobile  = "mobile"
)

var viewAliases = map[string]string{
	"web":        viewDesktop,
	"desktop":    viewDesktop,
	"mobile":     viewMobile,
	"m":          viewMobile,
	"web_mobile": viewMobile,
}

func normalizeView(v string) (string, bool) {
	view, ok := viewAliases[strings.ToLower(strings.TrimSpace(v))]
	return view, ok
}

var mobileUAMarkers = []string{"android", "iphone", "ipad", "ipod", "mobile", "windows phone"}

func isMobileUA(ua string) bool {
	ua = strings.ToLower(ua)
	for _, m := range mobileUAMarkers {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}
