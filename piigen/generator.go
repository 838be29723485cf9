package piigen

import (
	"fmt"
	"math/rand"
	"strings"
)

// Person carries the components of one generated identity. FirstName is
// kept separately because Chilean email addresses use only the first
// name and the paternal surname.
type Person struct {
	// FirstName is the bare first name, e.g. "JUAN".
	FirstName string
	// GivenNames is the first name plus an optional compound second
	// name, e.g. "JUAN CARLOS".
	GivenNames string
	// Surnames is the paternal surname plus an optional maternal
	// surname, e.g. "GONZÁLEZ RODRÍGUEZ".
	Surnames string
}

// FullName returns the complete display name, e.g.
// "JUAN CARLOS GONZÁLEZ RODRÍGUEZ".
func (p Person) FullName() string { return p.GivenNames + " " + p.Surnames }

// Paternal returns the first (paternal) surname.
func (p Person) Paternal() string {
	if i := strings.IndexByte(p.Surnames, ' '); i >= 0 {
		return p.Surnames[:i]
	}
	return p.Surnames
}

const (
	// secondNameProb is the chance of a compound first name
	// ("Juan Carlos", "María José").
	secondNameProb = 0.4
	// secondSurnameProb is the chance of carrying the maternal surname,
	// the usual case in Chile.
	secondSurnameProb = 0.8
)

// Generator produces synthetic Chilean PII values. All randomness flows
// through the single *rand.Rand, so a Generator is deterministic but
// not safe for concurrent use; give each goroutine its own.
type Generator struct {
	rng *rand.Rand
	seq int
}

// NewGenerator wraps rng. A nil rng gets a fixed-seed source so the
// zero configuration stays reproducible.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Generator{rng: rng}
}

// Person generates one identity with the compound-name and
// double-surname patterns of the locale.
func (g *Generator) Person() Person {
	first := firstNames[g.rng.Intn(len(firstNames))]
	given := first
	if g.rng.Float64() < secondNameProb {
		if second := secondNames[g.rng.Intn(len(secondNames))]; second != first {
			given = first + " " + second
		}
	}

	paternal := surnames[g.rng.Intn(len(surnames))]
	full := paternal
	if g.rng.Float64() < secondSurnameProb {
		if maternal := surnames[g.rng.Intn(len(surnames))]; maternal != paternal {
			full = paternal + " " + maternal
		}
	}

	return Person{FirstName: first, GivenNames: given, Surnames: full}
}

// RUT generates a Chilean tax identifier in XX.XXX.XXX-X format with a
// valid modulo-11 check digit.
func (g *Generator) RUT() string {
	n := 10_000_000 + g.rng.Intn(20_000_001)
	return fmt.Sprintf("%s-%s", groupDots(n), rutCheckDigit(n))
}

// rutCheckDigit computes the modulo-11 verifier: digits weighted
// 2..7 cyclically from the least significant, 11-(sum mod 11) mapped to
// 0..9 or K.
func rutCheckDigit(n int) string {
	sum, factor := 0, 2
	for n > 0 {
		sum += (n % 10) * factor
		n /= 10
		factor++
		if factor > 7 {
			factor = 2
		}
	}
	switch r := 11 - sum%11; r {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return fmt.Sprintf("%d", r)
	}
}

// Phone generates a Chilean phone number: 80% mobile (+56 9), the rest
// Santiago landline (+56 2).
func (g *Generator) Phone() string {
	if g.rng.Float64() < 0.8 {
		return fmt.Sprintf("+56 9 %04d %04d", 1000+g.rng.Intn(9000), 1000+g.rng.Intn(9000))
	}
	return fmt.Sprintf("+56 2 %04d %04d", 2000+g.rng.Intn(8000), 1000+g.rng.Intn(9000))
}

// Email builds name.surname@domain from the person's first name and
// paternal surname, lowercased with accents stripped.
func (g *Generator) Email(p Person) string {
	local := stripAccents(strings.ToLower(p.FirstName)) + "." +
		stripAccents(strings.ToLower(p.Paternal()))
	return local + "@" + emailDomains[g.rng.Intn(len(emailDomains))]
}

// Amount generates a CLP amount between 10.000 and 2.000.000 with dot
// thousands separators, e.g. "$45.000 CLP".
func (g *Generator) Amount() string {
	n := 10_000 + g.rng.Intn(1_990_001)
	return "$" + groupDots(n) + " CLP"
}

// SeqNumber generates a business reference identifier in one of the
// formats seen in complaint and transaction logs.
func (g *Generator) SeqNumber() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	switch g.rng.Intn(4) {
	case 0:
		return fmt.Sprintf("%07d", 1_000_000+g.rng.Intn(9_000_000))
	case 1:
		return fmt.Sprintf("%05d-%c", 10_000+g.rng.Intn(90_000), letters[g.rng.Intn(26)])
	case 2:
		return fmt.Sprintf("%c%06d", letters[g.rng.Intn(26)], 100_000+g.rng.Intn(900_000))
	default:
		g.seq++
		return fmt.Sprintf("OP-%06d", g.seq)
	}
}

// Date generates a date in one of the formats common in Chilean
// documents, numeric or long form.
func (g *Generator) Date() string {
	day := 1 + g.rng.Intn(28)
	month := 1 + g.rng.Intn(12)
	year := 2022 + g.rng.Intn(5)

	switch g.rng.Intn(5) {
	case 0:
		return fmt.Sprintf("%02d/%02d/%d", day, month, year)
	case 1:
		return fmt.Sprintf("%02d-%02d-%d", day, month, year)
	case 2:
		return fmt.Sprintf("%02d.%02d.%d", day, month, year)
	case 3:
		return fmt.Sprintf("%d-%02d-%02d", year, month, day)
	default:
		return fmt.Sprintf("%d de %s de %d", day, spanishMonths[month-1], year)
	}
}

// Address generates a street plus house number, e.g.
// "Av. Apoquindo 1234".
func (g *Generator) Address() string {
	return fmt.Sprintf("%s %d", streets[g.rng.Intn(len(streets))], 10+g.rng.Intn(990))
}

// City picks a Chilean city.
func (g *Generator) City() string {
	return cities[g.rng.Intn(len(cities))]
}

// Organization picks a Chilean company or institution name.
func (g *Generator) Organization() string {
	return organizations[g.rng.Intn(len(organizations))]
}

// groupDots formats n with dot thousands separators (Chilean
// convention), e.g. 12345678 -> "12.345.678".
func groupDots(n int) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}

var accentFold = map[rune]rune{
	'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ü': 'u', 'ñ': 'n',
}

// stripAccents folds accented vowels and ñ to their ASCII forms for
// email locals.
func stripAccents(s string) string {
	return strings.Map(func(r rune) rune {
		if f, ok := accentFold[r]; ok {
			return f
		}
		return r
	}, s)
}
