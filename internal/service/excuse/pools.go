package excuse

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/excuse-backend/internal/domain"
)

//go:embed pools.yaml
var embeddedPools []byte

type poolKey struct {
	category domain.Category
	tone     domain.Tone
}

// Pools holds pre-written fallback excuses keyed by category and tone.
type Pools struct {
	def    []string
	byPair map[poolKey][]string
}

type poolsDocument struct {
	Default []string                       `yaml:"default"`
	Pools   map[string]map[string][]string `yaml:"pools"`
}

// DefaultPools returns the pools compiled into the binary.
func DefaultPools() (*Pools, error) {
	return ParsePools(embeddedPools)
}

// LoadPools reads pools from a YAML file. An empty path returns DefaultPools.
func LoadPools(path string) (*Pools, error) {
	if path == "" {
		return DefaultPools()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pools file: %w", err)
	}
	p, err := ParsePools(data)
	if err != nil {
		return nil, fmt.Errorf("pools file %s: %w", path, err)
	}
	return p, nil
}

// ParsePools decodes and validates a pools document.
func ParsePools(data []byte) (*Pools, error) {
	var doc poolsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse pools: %w", err)
	}

	if len(doc.Default) == 0 {
		return nil, errors.New("default pool is empty")
	}
	if err := checkEntries("default", doc.Default); err != nil {
		return nil, err
	}

	p := &Pools{
		def:    doc.Default,
		byPair: make(map[poolKey][]string),
	}
	for c, tones := range doc.Pools {
		category := domain.Category(c)
		if !category.IsValid() {
			return nil, fmt.Errorf("unknown category %q", c)
		}
		for t, entries := range tones {
			tone := domain.Tone(t)
			if !tone.IsValid() {
				return nil, fmt.Errorf("unknown tone %q under %s", t, c)
			}
			name := c + "." + t
			if len(entries) == 0 {
				return nil, fmt.Errorf("pool %s is empty", name)
			}
			if err := checkEntries(name, entries); err != nil {
				return nil, err
			}
			p.byPair[poolKey{category, tone}] = entries
		}
	}
	return p, nil
}

func checkEntries(name string, entries []string) error {
	for i, e := range entries {
		if strings.TrimSpace(e) == "" {
			return fmt.Errorf("pool %s: entry %d is blank", name, i)
		}
	}
	return nil
}

// Lookup returns the pool for the pairing, or the default pool when the
// pairing has none.
func (p *Pools) Lookup(category domain.Category, tone domain.Tone) []string {
	if entries, ok := p.byPair[poolKey{category, tone}]; ok {
		return entries
	}
	return p.def
}

// Pick draws one excuse uniformly from the pairing's pool.
func (p *Pools) Pick(category domain.Category, tone domain.Tone, rnd Rand) string {
	entries := p.Lookup(category, tone)
	return entries[rnd.IntN(len(entries))]
}
