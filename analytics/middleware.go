package analytics

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bistroconsulting/bistro/ratelimit"
)

// Recorder decides which requests count as page views and stores them.
type Recorder struct {
	store   *Store
	limiter *ratelimit.Limiter
	paths   map[string]bool
	host    string
	log     zerolog.Logger
}

// NewRecorder records views of the given paths. host is the site's own
// hostname, so internal navigation is not reported as a referrer. Each IP
// is recorded at most 60 times a minute.
func NewRecorder(store *Store, paths []string, host string, log zerolog.Logger) *Recorder {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return &Recorder{
		store:   store,
		limiter: ratelimit.New(60, time.Minute),
		paths:   set,
		host:    host,
		log:     log,
	}
}

// Close stops the recorder's rate limiter.
func (r *Recorder) Close() {
	r.limiter.Stop()
}

// Middleware records a view after the handler has answered 200.
func (r *Recorder) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil && c.Response().Status == http.StatusOK {
				r.Record(c.Request(), c.RealIP())
			}
			return err
		}
	}
}

// Record stores req as a view or bot hit if it qualifies. It reports
// whether anything was written.
func (r *Recorder) Record(req *http.Request, ip string) bool {
	if req.Method != http.MethodGet || !r.paths[req.URL.Path] {
		return false
	}
	// htmx fragment requests are part of a page already counted.
	if req.Header.Get("HX-Request") == "true" {
		return false
	}
	if req.Header.Get("DNT") == "1" || req.Header.Get("Sec-GPC") == "1" {
		return false
	}
	if !r.limiter.Allow(ip) {
		return false
	}

	ua := req.UserAgent()
	salt := r.store.Salt()
	if IsBot(ua) {
		hit := &BotHit{
			BotName: ExtractBotName(ua),
			IPHash:  HashIP(salt, ip),
			Path:    req.URL.Path,
		}
		if err := r.store.RecordBot(hit); err != nil {
			r.log.Error().Err(err).Str("path", hit.Path).Msg("save bot hit")
			return false
		}
		return true
	}

	browser, os, device := ParseUserAgent(ua)
	v := &View{
		VisitorID: VisitorID(salt, ip, ua),
		Path:      req.URL.Path,
		Browser:   browser,
		OS:        os,
		Device:    device,
		Referrer:  CleanReferrer(req.Referer(), r.host),
	}
	if err := r.store.RecordView(v); err != nil {
		r.log.Error().Err(err).Str("path", v.Path).Msg("save view")
		return false
	}
	return true
}

// Tracked reports whether path is recorded.
func (r *Recorder) Tracked(path string) bool {
	return r.paths[path]
}
