package fr

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/blake2b"

	"github.com/zhidao-sysid/sysid/cplx"
	"github.com/zhidao-sysid/sysid/errs"
	"github.com/zhidao-sysid/sysid/tf"
)

// List is an ordered collection of frequency-response samples.
type List struct {
	Samples []FR
}

// ReadFile loads whitespace-separated "freq gain phase" triples, one per
// line, stopping at end-of-file or the first line with fewer than three
// numbers (without returning an error: the parser simply returns what it
// read so far). Samples are appended in file order (tail-insertion), a
// deliberate deviation from the reference implementation's head-insertion
// scan.
func ReadFile(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return List{}, errs.Wrap(errs.FileOpen, "open sample file "+path, err)
	}
	defer f.Close()

	if sum, err := fileDigest(path); err == nil {
		log.Debug().Str("file", path).Str("blake2b", sum).Msg("loaded sample file")
	}

	var list List
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		fields := splitFields(line)
		if len(fields) < 3 {
			break
		}
		freq, err1 := strconv.ParseFloat(fields[0], 64)
		gain, err2 := strconv.ParseFloat(fields[1], 64)
		phase, err3 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			break
		}
		list.Samples = append(list.Samples, FR{F: freq, G: gain, P: phase})
	}
	if err := sc.Err(); err != nil {
		return list, errs.Wrap(errs.FileFormat, "scan sample file "+path, err)
	}
	return list, nil
}

// WriteFile writes one line per sample, each value with roughly 10
// significant digits, single-space separated.
func (l List) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.FileOpen, "create sample file "+path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, s := range l.Samples {
		if _, err := fmt.Fprintf(w, "%.10g %.10g %.10g\n", s.F, s.G, s.P); err != nil {
			return errs.Wrap(errs.FileFormat, "write sample file "+path, err)
		}
	}
	return w.Flush()
}

// Filter removes, in place, every sample whose frequency falls outside
// [fmin, fmax].
func (l *List) Filter(fmin, fmax float64) {
	out := l.Samples[:0]
	for _, s := range l.Samples {
		if s.F >= fmin && s.F <= fmax {
			out = append(out, s)
		}
	}
	l.Samples = out
}

// ConnectWithTF returns a new list with each sample's complex gain
// multiplied by the transfer function's frequency response at that
// sample's angular frequency: Gout = G(j*omega) * Gin. Order is preserved.
func (l List) ConnectWithTF(g tf.TF) (List, error) {
	out := List{Samples: make([]FR, 0, len(l.Samples))}
	for _, s := range l.Samples {
		c, omega := s.ToComplex()
		resp, err := g.FreqResponse(omega)
		if err != nil {
			return List{}, errs.Wrap(errs.NumericDomain, "connect with transfer function", err)
		}
		out.Samples = append(out.Samples, FromComplex(resp.Mul(c), omega))
	}
	return out, nil
}

// OpenToClosed returns a new list with each sample transformed
// Gout = Gin / (1 + Gin), undefined (NumericDomain) if 1+Gin = 0.
func (l List) OpenToClosed() (List, error) {
	out := List{Samples: make([]FR, 0, len(l.Samples))}
	for _, s := range l.Samples {
		c, omega := s.ToComplex()
		gout, err := c.Div(c.Add(cplx.One))
		if err != nil {
			return List{}, errs.Wrap(errs.NumericDomain, "open_to_closed", err)
		}
		out.Samples = append(out.Samples, FromComplex(gout, omega))
	}
	return out, nil
}

// ClosedToOpen returns a new list with each sample transformed
// Gout = Gin / (1 - Gin), undefined (NumericDomain) if Gin = 1.
func (l List) ClosedToOpen() (List, error) {
	out := List{Samples: make([]FR, 0, len(l.Samples))}
	for _, s := range l.Samples {
		c, omega := s.ToComplex()
		gout, err := c.Div(cplx.One.Sub(c))
		if err != nil {
			return List{}, errs.Wrap(errs.NumericDomain, "closed_to_open", err)
		}
		out.Samples = append(out.Samples, FromComplex(gout, omega))
	}
	return out, nil
}

func splitFields(line string) []string {
	var fields []string
	start := -1
	for i, r := range line {
		if r == ' ' || r == '\t' {
			if start >= 0 {
				fields = append(fields, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, line[start:])
	}
	return fields
}

func fileDigest(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(data)
	return fmt.Sprintf("%x", sum[:8]), nil
}
