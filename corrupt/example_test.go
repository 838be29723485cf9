package corrupt_test

import (
	"fmt"

	"github.com/andesnlp/garbler/corrupt"
	"github.com/andesnlp/garbler/span"
)

// ExampleCorrupt shows the full pipeline at intensity zero, where the
// engine is the identity and every span is preserved verbatim.
func ExampleCorrupt() {
	text := "Contact: maria@mail.cl"
	spans := []span.Span{
		{Start: 9, End: 22, Label: span.Email, Source: "maria@mail.cl"},
	}

	opts := corrupt.DefaultOptions()
	opts.Intensity = 0
	opts.Seed = 42

	res, err := corrupt.Corrupt(text, spans, &opts)
	if err != nil {
		fmt.Println("corrupt:", err)
		return
	}

	fmt.Println(res.Text)
	fmt.Printf("%s [%d,%d) preserved=%d/%d\n",
		res.Spans[0].Label, res.Spans[0].Start, res.Spans[0].End,
		res.Report.Preserved, res.Report.Total)
	// Output:
	// Contact: maria@mail.cl
	// EMAIL [9,22) preserved=1/1
}
