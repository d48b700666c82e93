// Package branding maps request hosts to the display brand shown in emails
// and pages. The table is loaded once at startup.
package branding

import (
	"fmt"
	"net"
	"os"
	"strings"

	"seguros_xpto/pkg/requestctx"

	"gopkg.in/yaml.v3"
)

// Brand is one entry of the brand table.
type Brand struct {
	Domain  string   `yaml:"domain"`
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

type brandTable struct {
	Default string  `yaml:"default"`
	Brands  []Brand `yaml:"brands"`
}

// Resolver is safe for concurrent use; it is never mutated after creation.
type Resolver struct {
	byDomain map[string]string
	fallback string
}

// NewResolver builds a resolver from brands. An empty fallback means
// requestctx.DefaultBrand.
func NewResolver(fallback string, brands []Brand) (*Resolver, error) {
	if strings.TrimSpace(fallback) == "" {
		fallback = requestctx.DefaultBrand
	}
	r := &Resolver{byDomain: map[string]string{}, fallback: fallback}
	for _, b := range brands {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			return nil, fmt.Errorf("brand %q has no name", b.Domain)
		}
		for _, d := range append([]string{b.Domain}, b.Aliases...) {
			d = normalizeHost(d)
			if d == "" {
				continue
			}
			if prev, dup := r.byDomain[d]; dup && prev != name {
				return nil, fmt.Errorf("domain %q mapped to both %q and %q", d, prev, name)
			}
			r.byDomain[d] = name
		}
	}
	return r, nil
}

// Load reads a YAML brand table:
//
//	default: Seguros XPTO
//	brands:
//	  - domain: mediador-norte.pt
//	    name: Mediador Norte
//	    aliases: [seguros.mediador-norte.pt]
//
// An empty path yields a resolver that always returns the default brand.
func Load(path string) (*Resolver, error) {
	if path == "" {
		return NewResolver("", nil)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read brand table: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Resolver, error) {
	var table brandTable
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parse brand table: %w", err)
	}
	return NewResolver(table.Default, table.Brands)
}

// Resolve returns the brand of host. Ports and a leading "www." are ignored;
// parent domains are tried from the most specific one.
func (r *Resolver) Resolve(host string) string {
	h := normalizeHost(host)
	for h != "" {
		if name, ok := r.byDomain[h]; ok {
			return name
		}
		_, parent, found := strings.Cut(h, ".")
		if !found || !strings.Contains(parent, ".") {
			break
		}
		h = parent
	}
	return r.fallback
}

func (r *Resolver) Default() string { return r.fallback }

func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(host, ".")
	return strings.TrimPrefix(host, "www.")
}
