package piigen

import (
	"fmt"
	"sort"

	"github.com/andesnlp/garbler/span"
)

// Example is one annotated training sentence: generated text plus the
// non-overlapping entity spans over it, in rune offsets.
type Example struct {
	Text  string      `json:"text"`
	Spans []span.Span `json:"spans"`
}

// Sentence templates in the registers of real Chilean business text.
// Indexed verbs: 1 given names, 2 surnames, 3 RUT, 4 address, 5 city,
// 6 phone, 7 email, 8 amount, 9 sequence, 10 date, 11 organization.
var templates = []string{
	"El cliente %[1]s %[2]s con RUT %[3]s registrado en el sistema. Dirección actual: %[4]s, %[5]s. Teléfono de contacto: %[6]s - Email: %[7]s. Monto pendiente: %[8]s. N° de operación: %[9]s.",
	"Datos del usuario %[1]s %[2]s: documento %[3]s / dirección %[4]s en %[5]s / tel. %[6]s / correo %[7]s / saldo %[8]s / ref. %[9]s.",
	"Reg. cliente: %[1]s %[2]s (ID: %[3]s) - Dir: %[4]s, %[5]s - Tel: %[6]s - Email: %[7]s - Transacción: %[8]s - Código: %[9]s.",
	"FACTURA %[10]s - Cliente: %[1]s %[2]s / RUT: %[3]s / Dirección de facturación: %[4]s, %[5]s / Contacto: %[6]s / %[7]s / Total: %[8]s / N° Factura: %[9]s.",
	"Buenos días Sr./Sra. %[1]s %[2]s, confirmo sus datos: RUT %[3]s, domicilio en %[4]s, ciudad %[5]s, teléfono %[6]s, email %[7]s, último pago por %[8]s el %[10]s, consulta N° %[9]s.",
	"Estimado/a %[1]s %[2]s: Su cuenta de %[11]s asociada al RUT %[3]s tiene dirección registrada en %[4]s, %[5]s. Para consultas llamar al %[6]s o escribir a %[7]s. Saldo disponible: %[8]s. Código de operación: %[9]s.",
	"Paciente: %[1]s %[2]s - RUT: %[3]s - Domicilio: %[4]s, %[5]s - Fono: %[6]s - Email: %[7]s - Atendido el %[10]s - Copago: %[8]s - N° Atención: %[9]s.",
	"Pedido en %[11]s a nombre de %[1]s %[2]s (RUT %[3]s). Envío a: %[4]s, %[5]s. Teléfono: %[6]s. Email: %[7]s. Total del pedido: %[8]s. N° de seguimiento: %[9]s.",
}

// Example generates one annotated sentence: values are drawn, a
// template is filled, and spans are claimed longest-value-first so that
// overlapping matches (a city inside an address, a digit run inside a
// RUT) never produce conflicting annotations.
func (g *Generator) Example() Example {
	p := g.Person()
	rut := g.RUT()
	address := g.Address()
	city := g.City()
	phone := g.Phone()
	email := g.Email(p)
	amount := g.Amount()
	seq := g.SeqNumber()
	date := g.Date()
	org := g.Organization()

	text := fmt.Sprintf(templates[g.rng.Intn(len(templates))],
		p.GivenNames, p.Surnames, rut, address, city,
		phone, email, amount, seq, date, org)

	values := []struct {
		text  string
		label span.EntityType
	}{
		{p.FullName(), span.CustomerName},
		{rut, span.IDNumber},
		{address, span.Address},
		{city, span.Address},
		{phone, span.PhoneNumber},
		{email, span.Email},
		{amount, span.Amount},
		{seq, span.SeqNumber},
		{date, span.Date},
		{org, span.Organization},
	}

	return Example{Text: text, Spans: annotate(text, values)}
}

// annotate locates each value in text and returns non-overlapping spans
// in rune offsets. Longer values claim positions first; a value whose
// every occurrence collides with already claimed positions (or that the
// template did not use) is skipped.
func annotate(text string, values []struct {
	text  string
	label span.EntityType
}) []span.Span {
	runes := []rune(text)
	sort.SliceStable(values, func(i, j int) bool {
		return len([]rune(values[i].text)) > len([]rune(values[j].text))
	})

	used := make([]bool, len(runes))
	var spans []span.Span
	for _, v := range values {
		val := []rune(v.text)
		if len(val) == 0 {
			continue
		}
		start, ok := claimFirst(runes, val, used)
		if !ok {
			continue
		}
		end := start + len(val)
		for i := start; i < end; i++ {
			used[i] = true
		}
		spans = append(spans, span.Span{Start: start, End: end, Label: v.label, Source: v.text})
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

// claimFirst returns the first occurrence of val in text whose range is
// entirely unclaimed.
func claimFirst(text, val []rune, used []bool) (int, bool) {
scan:
	for i := 0; i+len(val) <= len(text); i++ {
		for j, r := range val {
			if used[i+j] || text[i+j] != r {
				continue scan
			}
		}
		return i, true
	}
	return 0, false
}
