package httpapi

import (
	"net/http"
	"strings"
)

// NewMux wires the engine's HTTP surface.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: Health,
	}))

	jh := JobsHandler{Deps: d}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: jh.Favorite, // expects /jobs/{id}/favorite
	}))
	mux.HandleFunc("/seed", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: jh.Seed,
	}))

	rh := RecomputeHandler{Deps: d}
	mux.HandleFunc("/recompute", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Run,
	}))

	ch := ConfigHandler{Deps: d}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ch.Validate,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/names", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Names,
	}))
	mux.HandleFunc("/config/named/", func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimPrefix(r.URL.Path, "/config/named/") == "" {
			WriteError(w, r, http.StatusBadRequest, "bad_path", "expected /config/named/{name}")
			return
		}
		methodMux(map[string]http.HandlerFunc{
			http.MethodGet: ch.NamedGet,
			http.MethodPut: ch.NamedPut,
		})(w, r)
	})

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
