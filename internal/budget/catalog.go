package budget

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slices"
)

var (
	ErrCatalogMalformed = errors.New("the budget definition is malformed")
	ErrDuplicateName    = errors.New("the budget name is used more than once")
	ErrTrailingData     = errors.New("unexpected data after the list of budgets")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Catalog is the ordered list of budget definitions of one user.
//
// All methods are safe to call on a nil Catalog, which behaves like an
// empty one.
type Catalog struct {
	definitions []Definition
	byName      map[string]int
}

// NewCatalog returns a catalog with the definitions in the given order.
//
// Names are not checked for uniqueness, the first definition with a name
// wins for lookups. Use ParseCatalog for validated catalogs.
func NewCatalog(definitions ...Definition) *Catalog {
	c := &Catalog{
		definitions: make([]Definition, 0, len(definitions)),
		byName:      make(map[string]int, len(definitions)),
	}

	for _, d := range definitions {
		d.Shops = slices.Clone(d.Shops)
		c.definitions = append(c.definitions, d)

		key := strings.ToLower(d.Name)
		if _, ok := c.byName[key]; !ok {
			c.byName[key] = len(c.definitions) - 1
		}
	}

	return c
}

// ParseCatalog decodes a JSON list of definitions and validates it.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	var definitions []Definition

	dec := json.NewDecoder(r)
	if err := dec.Decode(&definitions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogMalformed, err)
	}

	// Only whitespace may follow the list
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrCatalogMalformed, ErrTrailingData)
	}

	seen := make(map[string]struct{}, len(definitions))
	for i := range definitions {
		definitions[i].Name = strings.TrimSpace(definitions[i].Name)

		if err := validate.Struct(definitions[i]); err != nil {
			return nil, fmt.Errorf("%w: definition %d: %w", ErrCatalogMalformed, i, err)
		}

		key := strings.ToLower(definitions[i].Name)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %w: %s", ErrCatalogMalformed, ErrDuplicateName, definitions[i].Name)
		}
		seen[key] = struct{}{}
	}

	return NewCatalog(definitions...), nil
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.definitions)
}

// Definitions returns all definitions in catalog order.
func (c *Catalog) Definitions() []Definition {
	if c == nil {
		return []Definition{}
	}

	return slices.Clone(c.definitions)
}

// Regular returns all definitions that are not a fallback, in catalog order.
func (c *Catalog) Regular() []Definition {
	regular := []Definition{}
	if c == nil {
		return regular
	}

	for _, d := range c.definitions {
		if !d.Fallback {
			regular = append(regular, d)
		}
	}

	return regular
}

// Fallback returns the fallback definition. If more than one definition is
// marked as fallback, the first one is used.
func (c *Catalog) Fallback() (Definition, bool) {
	if c == nil {
		return Definition{}, false
	}

	for _, d := range c.definitions {
		if d.Fallback {
			return d, true
		}
	}

	return Definition{}, false
}

// Lookup returns the definition with the name, compared case-insensitively.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	if c == nil || name == "" {
		return Definition{}, false
	}

	i, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return Definition{}, false
	}

	return c.definitions[i], true
}
