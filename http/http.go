package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/RoanBrand/xraydb"
	"github.com/RoanBrand/xraydb/log"
	"github.com/RoanBrand/xraydb/materials"
	"github.com/RoanBrand/xraydb/sample"
	"github.com/RoanBrand/xraydb/xraydata"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xraydb_http_requests_total",
		Help: "Total number of query requests by endpoint and status code",
	}, []string{"endpoint", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "xraydb_http_request_duration_seconds",
		Help:    "Time spent answering query requests",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"endpoint"})
)

// maxEnergies limits the number of energies accepted in one request.
const maxEnergies = 100000

type server struct {
	db      *xraydb.DB
	catalog *materials.Catalog
}

// NewHandler returns the query API for db. Named materials are looked up
// in catalog, or in the built-in catalog when it is nil.
func NewHandler(db *xraydb.DB, catalog *materials.Catalog) http.Handler {
	if catalog == nil {
		catalog = materials.Default()
	}
	s := &server{db: db, catalog: catalog}
	mux := http.NewServeMux()
	mux.HandleFunc("/version", s.endpoint("version", s.version))
	mux.HandleFunc("/elements", s.endpoint("elements", s.elements))
	mux.HandleFunc("/element", s.endpoint("element", s.element))
	mux.HandleFunc("/mu", s.endpoint("mu", s.mu))
	mux.HandleFunc("/material", s.endpoint("material", s.material))
	mux.HandleFunc("/materials", s.endpoint("materials", s.materials))
	mux.HandleFunc("/f1f2", s.endpoint("f1f2", s.f1f2))
	mux.HandleFunc("/f0", s.endpoint("f0", s.f0))
	mux.HandleFunc("/edges", s.endpoint("edges", s.edges))
	mux.HandleFunc("/guess", s.endpoint("guess", s.guess))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func SetupServer(db *xraydb.DB, catalog *materials.Catalog) {
	http.Handle("/", NewHandler(db, catalog))
}

func StartServer(port string) error {
	log.Println("Starting xraydb service on port", port)
	return http.ListenAndServe(":"+port, nil)
}

type queryFunc func(r *http.Request) (interface{}, error)

// badRequest marks errors caused by the request itself.
type badRequest struct{ error }

func (e badRequest) Unwrap() error { return e.error }

func (s *server) endpoint(name string, f queryFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		code := http.StatusOK
		defer func() {
			requestsTotal.WithLabelValues(name, strconv.Itoa(code)).Inc()
			requestDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		}()

		if r.Method != http.MethodGet {
			code = http.StatusMethodNotAllowed
			http.Error(w, "only GET is supported", code)
			return
		}

		results, err := f(r)
		if err != nil {
			code = statusOf(err)
			errMsg := "Error querying " + name + ": " + err.Error()
			if code == http.StatusInternalServerError {
				log.Println(errMsg)
			}
			http.Error(w, errMsg, code)
			return
		}

		enc := json.NewEncoder(w)
		w.Header().Set("Content-Type", "application/json")
		if err = enc.Encode(results); err != nil {
			code = http.StatusInternalServerError
			http.Error(w, err.Error(), code)
			return
		}
	}
}

func statusOf(err error) int {
	var le *xraydb.LookupError
	var br badRequest
	switch {
	case errors.As(err, &br), errors.As(err, &le):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func required(r *http.Request, key string) (string, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return "", badRequest{fmt.Errorf("missing parameter %q", key)}
	}
	return v, nil
}

func floatParam(r *http.Request, key string, def float64) (float64, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, badRequest{fmt.Errorf("parameter %q: %w", key, err)}
	}
	return f, nil
}

// energies reads the energy list (eV) of a request, either as repeated or
// comma separated "energy" values, or as an emin/emax/estep range.
func energies(r *http.Request) ([]float64, error) {
	q := r.URL.Query()
	var out []float64
	for _, v := range q["energy"] {
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f == "" {
				continue
			}
			e, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, badRequest{fmt.Errorf("energy %q: %w", f, err)}
			}
			if !finite(e) {
				return nil, badRequest{fmt.Errorf("energy %q is not finite", f)}
			}
			out = append(out, e)
		}
	}
	if len(out) > 0 {
		return out, nil
	}

	emin, err := floatParam(r, "emin", 0)
	if err != nil {
		return nil, err
	}
	emax, err := floatParam(r, "emax", emin)
	if err != nil {
		return nil, err
	}
	estep, err := floatParam(r, "estep", 0)
	if err != nil {
		return nil, err
	}
	if !finite(emin) || !finite(emax) || !finite(estep) {
		return nil, badRequest{errors.New("emin, emax and estep must be finite")}
	}
	if emin <= 0 {
		return nil, badRequest{errors.New("missing parameter \"energy\" or \"emin\"")}
	}
	if emax < emin {
		return nil, badRequest{errors.New("emax is below emin")}
	}
	if estep <= 0 {
		return []float64{emin}, nil
	}
	steps := (emax - emin) / estep
	if !(steps < maxEnergies) {
		return nil, badRequest{fmt.Errorf("more than %d energies requested", maxEnergies)}
	}
	out = make([]float64, int(steps)+1)
	for i := range out {
		out[i] = emin + float64(i)*estep
	}
	return out, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func kind(r *http.Request) (xraydb.Kind, error) {
	k := r.URL.Query().Get("kind")
	if k == "" {
		return xraydb.Total, nil
	}
	return xraydb.ParseKind(k)
}

func (s *server) version(r *http.Request) (interface{}, error) {
	return struct {
		Version xraydata.Version `json:"version"`
		Digest  string           `json:"digest"`
	}{s.db.Version(), s.db.Digest()}, nil
}

func (s *server) elements(r *http.Request) (interface{}, error) {
	return s.db.Elements(), nil
}

func (s *server) element(r *http.Request) (interface{}, error) {
	id, err := required(r, "id")
	if err != nil {
		return nil, err
	}
	el, err := s.db.Element(id)
	if err != nil {
		return nil, err
	}
	edges, err := s.db.Edges(el.Symbol)
	if err != nil {
		return nil, err
	}
	lines, err := s.db.Lines(el.Symbol, "", 0)
	if err != nil {
		return nil, err
	}
	return struct {
		Z         int                    `json:"z"`
		Symbol    string                 `json:"symbol"`
		Name      string                 `json:"name"`
		MolarMass float64                `json:"molar_mass"`
		Density   float64                `json:"density"`
		Edges     map[string]xraydb.Edge `json:"edges"`
		Lines     map[string]xraydb.Line `json:"lines"`
	}{el.Z, el.Symbol, el.Name, el.MolarMass, el.Density, edges, lines}, nil
}

func (s *server) mu(r *http.Request) (interface{}, error) {
	id, err := required(r, "element")
	if err != nil {
		return nil, err
	}
	e, err := energies(r)
	if err != nil {
		return nil, err
	}
	k, err := kind(r)
	if err != nil {
		return nil, err
	}
	sym, err := s.db.Symbol(id)
	if err != nil {
		return nil, err
	}
	mu, err := s.db.CrossSection(sym, e, k)
	if err != nil {
		return nil, err
	}
	return &sample.Record{Query: id, Formula: sym, Kind: k.String(), Energies: e, Mu: mu}, nil
}

// material answers for a formula with a density, or for a catalog name.
func (s *server) material(r *http.Request) (interface{}, error) {
	e, err := energies(r)
	if err != nil {
		return nil, err
	}
	k, err := kind(r)
	if err != nil {
		return nil, err
	}
	density, err := floatParam(r, "density", 0)
	if err != nil {
		return nil, err
	}

	rec := &sample.Record{Kind: k.String(), Energies: e}
	if name := strings.TrimSpace(r.URL.Query().Get("name")); name != "" {
		m, err := xraydb.FindMaterial(r.Context(), s.catalog, name, density)
		if err != nil {
			return nil, err
		}
		rec.Query, rec.Formula, rec.Density = name, m.Formula, m.Density
	} else {
		formula, err := required(r, "formula")
		if err != nil {
			return nil, err
		}
		if density <= 0 {
			return nil, badRequest{errors.New("a formula needs a density > 0")}
		}
		rec.Query, rec.Formula, rec.Density = formula, formula, density
	}

	fractions, err := s.db.MassFractions(rec.Formula)
	if err != nil {
		return nil, err
	}
	if rec.Mu, err = s.db.MaterialCrossSection(rec.Formula, e, rec.Density, k); err != nil {
		return nil, err
	}
	rec.Results = sample.Results(fractions)
	return rec, nil
}

func (s *server) materials(r *http.Request) (interface{}, error) {
	return s.catalog.All(r.Context()), nil
}

func (s *server) f1f2(r *http.Request) (interface{}, error) {
	id, err := required(r, "element")
	if err != nil {
		return nil, err
	}
	e, err := energies(r)
	if err != nil {
		return nil, err
	}
	f1, f2, err := s.db.AnomalousFactors(id, e)
	if err != nil {
		return nil, err
	}
	return struct {
		Energies []float64 `json:"energies"`
		F1       []float64 `json:"f1"`
		F2       []float64 `json:"f2"`
	}{e, f1, f2}, nil
}

func (s *server) f0(r *http.Request) (interface{}, error) {
	ion, err := required(r, "ion")
	if err != nil {
		return nil, err
	}
	var qs []float64
	for _, v := range strings.Split(r.URL.Query().Get("q"), ",") {
		if v = strings.TrimSpace(v); v == "" {
			continue
		}
		q, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, badRequest{fmt.Errorf("q %q: %w", v, err)}
		}
		qs = append(qs, q)
	}
	if len(qs) == 0 {
		qs = []float64{0}
	}
	f0, err := s.db.F0(ion, qs)
	if err != nil {
		return nil, err
	}
	return struct {
		Q  []float64 `json:"q"`
		F0 []float64 `json:"f0"`
	}{qs, f0}, nil
}

func (s *server) edges(r *http.Request) (interface{}, error) {
	id, err := required(r, "element")
	if err != nil {
		return nil, err
	}
	return s.db.Edges(id)
}

func (s *server) guess(r *http.Request) (interface{}, error) {
	v, err := required(r, "energy")
	if err != nil {
		return nil, err
	}
	energy, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, badRequest{fmt.Errorf("energy %q: %w", v, err)}
	}
	var labels []string
	if l := r.URL.Query().Get("edges"); l != "" {
		labels = strings.Split(l, ",")
	}
	sym, label, ok := s.db.GuessEdge(energy, labels...)
	if !ok {
		return nil, &xraydb.LookupError{Err: xraydb.ErrUnknownEdge, Value: strings.Join(labels, ",")}
	}
	return struct {
		Element string `json:"element"`
		Edge    string `json:"edge"`
	}{sym, label}, nil
}
