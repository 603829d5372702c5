// SPDX-License-Identifier: MIT
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// tokenReader yields base-10 integers from whitespace separated text.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int // 1-based index of the last token read
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

// next returns the next integer, naming what was expected on failure.
func (t *tokenReader) next(what string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("loader: read %s: %w", what, err)
		}
		return 0, fmt.Errorf("%w: missing %s after token %d", ErrTruncated, what, t.pos)
	}
	t.pos++
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s) %q is not an integer", ErrSyntax, t.pos, what, t.sc.Text())
	}

	return v, nil
}

// count reads a non-negative count.
func (t *tokenReader) count(what string) (int, error) {
	v, err := t.next(what)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %s = %d", ErrNegative, what, v)
	}

	return v, nil
}

// maxPrealloc bounds the slice capacity reserved from the header counts.
const maxPrealloc = 1 << 12

// ParseInts reads the integer form: L G, L pairs, G gateways, agent.
// Anything after the agent ID is rejected with ErrSyntax. The result is not
// validated; call Validate or Build.
func ParseInts(r io.Reader) (Description, error) {
	t := newTokenReader(r)

	links, err := t.count("link count")
	if err != nil {
		return Description{}, err
	}
	gateways, err := t.count("gateway count")
	if err != nil {
		return Description{}, err
	}

	// counts come from the input; append grows past the cap
	d := Description{
		Links:    make([][2]int, 0, min(links, maxPrealloc)),
		Gateways: make([]int, 0, min(gateways, maxPrealloc)),
	}
	for i := 0; i < links; i++ {
		a, err := t.next(fmt.Sprintf("link #%d first node", i))
		if err != nil {
			return Description{}, err
		}
		b, err := t.next(fmt.Sprintf("link #%d second node", i))
		if err != nil {
			return Description{}, err
		}
		d.Links = append(d.Links, [2]int{a, b})
	}
	for i := 0; i < gateways; i++ {
		gw, err := t.next(fmt.Sprintf("gateway #%d", i))
		if err != nil {
			return Description{}, err
		}
		d.Gateways = append(d.Gateways, gw)
	}
	if d.Agent, err = t.next("agent node"); err != nil {
		return Description{}, err
	}

	if t.sc.Scan() {
		return Description{}, fmt.Errorf("%w: trailing data %q after agent", ErrSyntax, t.sc.Text())
	}
	if err := t.sc.Err(); err != nil {
		return Description{}, fmt.Errorf("loader: read: %w", err)
	}

	return d, nil
}

// WriteInts writes d in the integer form, one logical record per line.
func (d Description) WriteInts(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(d.Links), len(d.Gateways))
	for _, l := range d.Links {
		fmt.Fprintf(bw, "%d %d\n", l[0], l[1])
	}
	for _, gw := range d.Gateways {
		fmt.Fprintf(bw, "%d\n", gw)
	}
	fmt.Fprintf(bw, "%d\n", d.Agent)

	return bw.Flush()
}
