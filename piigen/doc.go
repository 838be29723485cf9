// Package piigen generates synthetic Chilean PII values and fully
// annotated example sentences for NER training data.
//
// The value generators cover the entity inventory of package span:
// person names with the compound first-name and double-surname patterns
// common in Chile, RUT identifiers with a real modulo-11 check digit,
// +56 phone numbers, accent-stripped email addresses, CLP amounts,
// sequence identifiers, dates in local formats, street addresses and
// organization names.
//
// NewExample fills a business-text template with generated values and
// annotates it with non-overlapping spans using longest-value-first
// position claiming, so a city name embedded in a street address never
// produces a conflicting second annotation.
//
// All generation is deterministic given the *rand.Rand handed to
// NewGenerator; the package itself holds no global state.
package piigen
