// Package materials is the catalog of named materials (name, formula,
// density) used to look up compounds by name. It always holds a built-in
// reference list and can merge in materials from external sources: YAML
// or XML files, a SQL Server table, an Access database or another xraydb
// service.
package materials

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/RoanBrand/xraydb/log"
)

// Material is a named compound.
type Material struct {
	Name    string  `json:"name" yaml:"name" xml:"name,attr"`
	Formula string  `json:"formula" yaml:"formula" xml:"formula,attr"`
	Density float64 `json:"density" yaml:"density" xml:"density,attr"` // g/cm^3
	Source  string  `json:"source,omitempty" yaml:"-" xml:"-"`
}

// Source loads materials from outside the built-in list.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Material, error)
}

// Catalog answers name lookups. External sources are reloaded when the
// cached copy is older than maxAge; the built-in list never changes.
type Catalog struct {
	builtin   map[string]Material
	byFormula map[string]Material
	sources   []Source
	maxAge    time.Duration

	// external source cache
	cLock    sync.RWMutex
	cAge     time.Time
	external map[string]Material
}

var defaultCatalog = NewCatalog(0)

// Default returns a catalog holding only the built-in materials.
func Default() *Catalog {
	return defaultCatalog
}

// Builtin returns a copy of the built-in materials.
func Builtin() []Material {
	out := make([]Material, len(builtin))
	copy(out, builtin)
	return out
}

func NewCatalog(maxAge time.Duration, sources ...Source) *Catalog {
	c := &Catalog{
		builtin:   make(map[string]Material, len(builtin)),
		byFormula: make(map[string]Material, len(builtin)),
		sources:   sources,
		maxAge:    maxAge,
	}
	for _, m := range builtin {
		m.Source = "builtin"
		c.builtin[key(m.Name)] = m
		// first name listed for a formula wins
		if _, ok := c.byFormula[m.Formula]; !ok {
			c.byFormula[m.Formula] = m
		}
	}
	return c
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Find looks a material up by name (case-insensitive), then by exact
// formula. External materials shadow built-in ones of the same name.
func (c *Catalog) Find(ctx context.Context, name string) (Material, bool) {
	k := key(name)
	if ext := c.externals(ctx); ext != nil {
		if m, ok := ext[k]; ok {
			return m, true
		}
	}
	if m, ok := c.builtin[k]; ok {
		return m, true
	}
	m, ok := c.byFormula[strings.TrimSpace(name)]
	return m, ok
}

// All returns every material sorted by name.
func (c *Catalog) All(ctx context.Context) []Material {
	merged := make(map[string]Material, len(c.builtin))
	for k, m := range c.builtin {
		merged[k] = m
	}
	for k, m := range c.externals(ctx) {
		merged[k] = m
	}

	out := make([]Material, 0, len(merged))
	for _, m := range merged {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return key(out[i].Name) < key(out[j].Name) })
	return out
}

// externals returns the cached external materials, reloading them when
// stale. A failed reload keeps serving the previous copy.
func (c *Catalog) externals(ctx context.Context) map[string]Material {
	if len(c.sources) == 0 {
		return nil
	}

	// check if cache recent enough
	c.cLock.RLock()
	if c.external != nil && time.Since(c.cAge) < c.maxAge {
		defer c.cLock.RUnlock()
		return c.external
	}

	// is old, get write lock and reload
	c.cLock.RUnlock()
	c.cLock.Lock()
	defer c.cLock.Unlock()

	// another caller may have reloaded in the meantime
	if c.external != nil && time.Since(c.cAge) < c.maxAge {
		return c.external
	}

	ext, err := c.load(ctx)
	if err != nil {
		log.Println("Error loading material catalog:", err)
		if c.external == nil {
			c.external = map[string]Material{}
		}
		// retry on the next lookup after maxAge, not on every one
		c.cAge = time.Now()
		return c.external
	}
	c.external = ext
	c.cAge = time.Now()
	return ext
}

// Refresh reloads all external sources now.
func (c *Catalog) Refresh(ctx context.Context) error {
	ext, err := c.load(ctx)
	if err != nil {
		return err
	}
	c.cLock.Lock()
	c.external = ext
	c.cAge = time.Now()
	c.cLock.Unlock()
	return nil
}

// load reads all sources concurrently. Later sources override earlier
// ones for the same name.
func (c *Catalog) load(ctx context.Context) (map[string]Material, error) {
	results := make([][]Material, len(c.sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range c.sources {
		i, src := i, src
		g.Go(func() error {
			ms, err := src.Load(ctx)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			for j := range ms {
				ms[j].Source = src.Name()
			}
			results[i] = ms
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ext := make(map[string]Material)
	for _, ms := range results {
		for _, m := range ms {
			if m.Name == "" || m.Formula == "" {
				continue
			}
			ext[key(m.Name)] = m
		}
	}
	return ext, nil
}
