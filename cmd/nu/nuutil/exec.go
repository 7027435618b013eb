package nuutil

import (
	"context"
	"io"

	"github.com/lpil/nushell/internal/shell"
	"github.com/lpil/nushell/internal/stream"
	"github.com/lpil/nushell/internal/types"
	"golang.org/x/sync/errgroup"
)

// Exec runs the pipeline src and writes its values to w, one JSON value per line.
// If r is not nil, the JSON values it contains are the input of the pipeline.
// Reading stops as soon as the pipeline no longer needs values.
func Exec(ctx context.Context, sh *shell.Shell, src string, r io.Reader, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	var input stream.Operator
	if r != nil {
		ch := make(chan types.Value)
		input = stream.Channel(ch)

		// unblock the reader once the pipeline is done
		if c, ok := r.(io.Closer); ok {
			stop := context.AfterFunc(ctx, func() { _ = c.Close() })
			defer stop()
		}

		g.Go(func() error {
			defer close(ch)

			err := ReadJSON(ctx, r, ch)
			if ctx.Err() != nil {
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		defer cancel()

		s, err := sh.Run(ctx, src, input)
		if err != nil {
			return err
		}
		defer s.Close()

		return s.Iterate(ctx, func(v types.Value) error {
			return WriteJSON(w, v)
		})
	})

	return g.Wait()
}
