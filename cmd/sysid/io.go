package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/zhidao-sysid/sysid/tf"
)

// readTFFile reads a transfer function file: the first line holds the
// numerator's coefficients in ascending power order, the second line the
// denominator's, whitespace-separated.
func readTFFile(path string) (tf.TF, error) {
	f, err := os.Open(path)
	if err != nil {
		return tf.TF{}, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lines := make([]string, 0, 2)
	for sc.Scan() && len(lines) < 2 {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return tf.TF{}, err
	}
	if len(lines) < 2 {
		return tf.TF{}, fmt.Errorf("%s: expected numerator and denominator lines", path)
	}

	num, err := parseCoeffs(lines[0])
	if err != nil {
		return tf.TF{}, fmt.Errorf("%s: numerator: %w", path, err)
	}
	den, err := parseCoeffs(lines[1])
	if err != nil {
		return tf.TF{}, fmt.Errorf("%s: denominator: %w", path, err)
	}
	return tf.New(num, den)
}

func parseCoeffs(line string) ([]float64, error) {
	fields := strings.Fields(line)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// writeHistoryFile writes one step-size value per line, the format
// readHistoryFile expects.
func writeHistoryFile(path string, history []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range history {
		if _, err := fmt.Fprintf(w, "%g\n", v); err != nil {
			return err
		}
	}
	return w.Flush()
}

// readHistoryFile reads one step-size value per line.
func readHistoryFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
