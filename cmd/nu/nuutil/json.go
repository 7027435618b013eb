package nuutil

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/types"
)

// ReadJSON decodes a stream of JSON values from r and sends them to ch.
// Values may be separated by any whitespace, usually a newline.
func ReadJSON(ctx context.Context, r io.Reader, ch chan<- types.Value) error {
	dec := json.NewDecoder(r)

	for {
		var raw json.RawMessage
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to read input")
		}

		v, err := types.ParseJSON(raw)
		if err != nil {
			return err
		}

		select {
		case ch <- v:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// WriteJSON writes v to w as a single line of JSON.
func WriteJSON(w io.Writer, v types.Value) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	return enc.Encode(v)
}

// ParseVars parses variables declared as name=json.
func ParseVars(decls []string) (map[string]types.Value, error) {
	vars := make(map[string]types.Value, len(decls))

	for _, d := range decls {
		name, value, ok := strings.Cut(d, "=")
		if !ok || name == "" {
			return nil, errors.Errorf("invalid variable %q, expected name=json", d)
		}

		v, err := types.ParseJSON([]byte(value))
		if err != nil {
			return nil, errors.Wrapf(err, "variable %s", name)
		}
		vars[name] = v
	}

	return vars, nil
}
