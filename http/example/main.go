/*
Package main is a toy server showing cairn's http stack end to end.

It composes every route's response through [resp.Response], serves an
embedded stylesheet through the static media type table, and stacks the
full middleware chain in front of a gorilla/mux router.

Run it and poke around:

	go run . &
	curl -i localhost:3000/reports?page=2
*/
package main

import (
	"bytes"
	"embed"
	"fmt"
	"net/http"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/http/cookie"
	"github.com/xy-planning-network/cairn/http/middleware"
	"github.com/xy-planning-network/cairn/http/resp"
	"github.com/xy-planning-network/cairn/logger"
)

//go:embed static
var static embed.FS

// Hardcoded keys keep the example self-contained.
// A real app reads these out of its environment.
const (
	hashKey    = "8d27c1b17b178fa4eb128e7fae2a6e96c63eed09b1b27a873ab75c95b1f0343c"
	encryptKey = "5f3a2b9c8d17e604f1b52d7a98c3e6d0417286b9a5c3d2e1f0695847a3b2c1d0"
)

func main() {
	env := cairn.EnvVarOrEnv("ENVIRONMENT", cairn.Development)
	l := logger.New(logger.WithEnv(env))

	codec, err := cookie.NewCodecFromHex(hashKey, encryptKey)
	if err != nil {
		l.Fatal(err.Error(), nil)
		os.Exit(1)
	}

	h := &handler{l: l, opts: resp.OptionsFromEnv(), codec: codec}

	addr := cairn.EnvVarOrString("ADDR", "localhost:3000")
	l.Info("serving on http://"+addr, nil)
	if err := http.ListenAndServe(addr, newRouter(h, env)); err != nil {
		l.Fatal(err.Error(), nil)
		os.Exit(1)
	}
}

// newRouter mounts every route behind the full middleware chain.
func newRouter(h *handler, env cairn.Environment) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", h.home).Methods(http.MethodGet)
	r.HandleFunc("/reports", h.listReports).Methods(http.MethodGet)
	r.HandleFunc("/reports/export", h.exportReports).Methods(http.MethodGet)
	r.HandleFunc("/login", h.login).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.logout).Methods(http.MethodPost)
	r.HandleFunc("/static/{name}", h.staticFile).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(h.notFound)

	return middleware.Chain(
		r,
		middleware.ReportPanic(env),
		middleware.RateLimit(middleware.NewVisitors()),
		middleware.ForceHTTPS(env),
		middleware.CORS(cairn.EnvVarOrString("BASE_URL", "")),
		middleware.InjectIPAddress(),
		middleware.RequestID(),
		middleware.LogRequest(h.l),
	)
}

type handler struct {
	l     logger.Logger
	opts  *resp.Options
	codec *cookie.Codec
}

// home lists the routes worth poking at.
func (h *handler) home(w http.ResponseWriter, r *http.Request) {
	res := resp.NewResponse(h.opts)
	res.SetMedia(map[string]any{
		"routes": []string{
			"GET /reports",
			"GET /reports/export",
			"POST /login",
			"POST /logout",
			"GET /static/styles.css",
		},
	})
	res.Headers().SetCacheControl("no-store")

	h.apply(w, r, res)
}

// listReports pages through a fixed report list,
// advertising neighboring pages in the Link header.
func (h *handler) listReports(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	res := resp.NewResponse(h.opts)
	res.SetMedia(map[string]any{
		"page":    page,
		"reports": []string{"trail conditions", "weather", "closures"},
	})
	res.Headers().SetETag(fmt.Sprintf("reports-%d", page))
	res.Headers().SetCacheControl("private", "max-age=60")
	res.AddLink(fmt.Sprintf("/reports?page=%d", page+1), "next")
	if page > 1 {
		res.AddLink(fmt.Sprintf("/reports?page=%d", page-1), "prev")
	}

	h.apply(w, r, res)
}

// exportReports sends the report list as a CSV download.
func (h *handler) exportReports(w http.ResponseWriter, r *http.Request) {
	csv := "name,status\ntrail conditions,open\nweather,clear\nclosures,none\n"

	res := resp.NewResponse(h.opts)
	res.SetData([]byte(csv))
	res.Headers().SetContentType("text/csv")
	res.Headers().SetContentDisposition("trail reports.csv")

	h.apply(w, r, res)
}

// login drops a signed session cookie and bounces to the reports.
func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	res := resp.NewResponse(h.opts)
	res.Status = resp.StatusLine(http.StatusSeeOther)
	res.Headers().SetLocation("/reports")
	err := res.SetSignedCookie(h.codec, "session", "hiker-1", cookie.WithPath("/"), cookie.WithMaxAge(24*time.Hour))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.apply(w, r, res)
}

// logout expires the session cookie and bounces home.
func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	res := resp.NewResponse(h.opts)
	res.Status = resp.StatusLine(http.StatusSeeOther)
	res.Headers().SetLocation("/")
	if err := res.UnsetCookie("session"); err != nil {
		h.fail(w, r, err)
		return
	}

	h.apply(w, r, res)
}

// staticFile streams an embedded asset,
// typing it off the extension table in [resp.Options].
func (h *handler) staticFile(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	b, err := static.ReadFile(path.Join("static", name))
	if err != nil {
		h.notFound(w, r)
		return
	}

	res := resp.NewResponse(h.opts)
	if mt, ok := h.opts.MediaTypeForExtension(path.Ext(name)); ok {
		res.Headers().SetContentType(mt)
	}
	res.Headers().SetCacheControl("public", "max-age=86400")
	res.SetStream(bytes.NewReader(b), int64(len(b)))

	h.apply(w, r, res)
}

func (h *handler) notFound(w http.ResponseWriter, r *http.Request) {
	res := resp.NewResponse(h.opts)
	res.Status = resp.StatusLine(http.StatusNotFound)
	res.SetMedia(map[string]any{"error": "nothing at " + r.URL.Path})

	h.apply(w, r, res)
}

// apply writes res out, falling back to a bare 500 when it can't.
func (h *handler) apply(w http.ResponseWriter, r *http.Request, res *resp.Response) {
	if err := res.Apply(w); err != nil {
		h.fail(w, r, err)
	}
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.l.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
