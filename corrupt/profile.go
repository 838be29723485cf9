package corrupt

import (
	"fmt"
	"os"

	"github.com/andesnlp/garbler/mutate"
	"github.com/andesnlp/garbler/span"
	"gopkg.in/yaml.v3"
)

// Profile is the tolerance profile of one entity type: how much of the
// entity's characters may be perturbed before it is declared
// unrecoverable, and which mutation kinds may never touch it.
type Profile struct {
	// Tolerance is the corruption budget in [0,1]. High for robust types
	// (names, addresses), very low for symbol-critical types (emails,
	// IDs, sequence numbers).
	Tolerance float64

	// Unsafe lists mutation kinds that must never apply inside or on the
	// boundary of an entity of this type.
	Unsafe []mutate.Kind

	// MaxSubstitutions caps confusable substitutions inside one entity
	// occurrence. Zero means unlimited.
	MaxSubstitutions int
}

// unsafe reports whether k is forbidden for this profile.
func (p Profile) unsafe(k mutate.Kind) bool {
	for _, u := range p.Unsafe {
		if u == k {
			return true
		}
	}
	return false
}

// Profiles maps entity types to their tolerance profiles. Load once and
// share by reference; no run mutates it.
type Profiles map[span.EntityType]Profile

// DefaultProfiles returns the built-in profile table.
//
// Names, addresses and organizations tolerate heavy noise; formats with
// structural symbols (email, ID, phone, amount, sequence) exclude
// symbol corruption and keep tight budgets, with IDs and sequence
// numbers capped at a single substitution.
func DefaultProfiles() Profiles {
	return Profiles{
		span.CustomerName: {Tolerance: 0.8},
		span.Address:      {Tolerance: 0.7},
		span.Organization: {Tolerance: 0.7},
		span.Date:         {Tolerance: 0.4, Unsafe: []mutate.Kind{mutate.Symbol}},
		span.PhoneNumber:  {Tolerance: 0.3, Unsafe: []mutate.Kind{mutate.Symbol, mutate.Merge}},
		span.Amount:       {Tolerance: 0.3, Unsafe: []mutate.Kind{mutate.Symbol, mutate.Delete}},
		span.Email: {
			Tolerance: 0.15,
			Unsafe:    []mutate.Kind{mutate.Symbol, mutate.Delete, mutate.Merge, mutate.Fragment, mutate.Transpose},
		},
		span.IDNumber: {
			Tolerance:        0.1,
			Unsafe:           []mutate.Kind{mutate.Symbol, mutate.Delete, mutate.Merge, mutate.Fragment, mutate.Transpose},
			MaxSubstitutions: 1,
		},
		span.SeqNumber: {
			Tolerance:        0.1,
			Unsafe:           []mutate.Kind{mutate.Symbol, mutate.Delete, mutate.Merge, mutate.Fragment, mutate.Transpose},
			MaxSubstitutions: 1,
		},
	}
}

// rawProfile is the YAML shape of a Profile.
type rawProfile struct {
	Tolerance        float64  `yaml:"tolerance"`
	Unsafe           []string `yaml:"unsafe"`
	MaxSubstitutions int      `yaml:"max_substitutions"`
}

// ParseProfiles decodes a YAML profile table of the form:
//
//	EMAIL:
//	  tolerance: 0.15
//	  unsafe: [symbol, delete, merge, fragment, transpose]
//	ID_NUMBER:
//	  tolerance: 0.1
//	  unsafe: [symbol, delete]
//	  max_substitutions: 1
//
// Unknown mutation kind names and out-of-range tolerances are rejected.
func ParseProfiles(data []byte) (Profiles, error) {
	var raw map[string]rawProfile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("corrupt: parse profiles: %w", err)
	}

	out := make(Profiles, len(raw))
	for name, rp := range raw {
		if rp.Tolerance < 0 || rp.Tolerance > 1 {
			return nil, fmt.Errorf("%w: tolerance %v for %s outside [0,1]", ErrBadOptions, rp.Tolerance, name)
		}
		p := Profile{Tolerance: rp.Tolerance, MaxSubstitutions: rp.MaxSubstitutions}
		for _, kn := range rp.Unsafe {
			k, ok := mutate.ParseKind(kn)
			if !ok {
				return nil, fmt.Errorf("%w: unknown mutation kind %q for %s", ErrBadOptions, kn, name)
			}
			p.Unsafe = append(p.Unsafe, k)
		}
		out[span.EntityType(name)] = p
	}
	return out, nil
}

// LoadProfiles reads a YAML profile table from path.
func LoadProfiles(path string) (Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corrupt: read profiles: %w", err)
	}
	return ParseProfiles(data)
}
