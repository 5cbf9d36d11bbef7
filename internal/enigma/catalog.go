package enigma

// Catalog is the sole owner of rotor instances, keyed by name. Machines
// borrow rotors from a catalog; the catalog itself lives for the process.
type Catalog struct {
	alphabet *Alphabet
	rotors   map[string]*Rotor
	names    []string // registration order, for stable listing
}

// NewCatalog creates an empty catalog over alphabet.
func NewCatalog(alphabet *Alphabet) *Catalog {
	return &Catalog{
		alphabet: alphabet,
		rotors:   make(map[string]*Rotor),
	}
}

// Alphabet returns the catalog's common alphabet.
func (c *Catalog) Alphabet() *Alphabet {
	return c.alphabet
}

// Add registers a rotor. Fails with a configuration error if a rotor with
// the same name is already registered or if the rotor was built over a
// different alphabet.
func (c *Catalog) Add(r *Rotor) error {
	if _, dup := c.rotors[r.Name()]; dup {
		return NewConfigurationError("duplicate rotor %s in catalog", r.Name())
	}
	if r.Alphabet() != c.alphabet {
		return NewConfigurationError("rotor %s uses a different alphabet", r.Name())
	}
	c.rotors[r.Name()] = r
	c.names = append(c.names, r.Name())
	return nil
}

// Lookup returns the rotor registered under name, if any.
func (c *Catalog) Lookup(name string) (*Rotor, bool) {
	r, ok := c.rotors[name]
	return r, ok
}

// Names returns the registered rotor names in registration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of registered rotors.
func (c *Catalog) Len() int {
	return len(c.rotors)
}
