package hir

import (
	"github.com/lpil/nushell/internal/environment"
	"github.com/lpil/nushell/internal/types"
)

var _ types.Value = (*BlockValue)(nil)

// A BlockValue is a block passed around as a value, without being run.
// Blocks are how conditions are handed to commands.
type BlockValue struct {
	Block *Block
}

// NewBlockValue returns a value wrapping b.
func NewBlockValue(b *Block) *BlockValue {
	return &BlockValue{Block: b}
}

func (v *BlockValue) V() any {
	return v.Block
}

func (v *BlockValue) Type() types.Type {
	return types.TypeBlock
}

func (v *BlockValue) IsZero() (bool, error) {
	return v.Block.Len() == 0, nil
}

func (v *BlockValue) String() string {
	return "{ " + v.Block.String() + " }"
}

func (v *BlockValue) MarshalJSON() ([]byte, error) {
	return []byte(`"<block>"`), nil
}

// AsBlock returns the block held by v.
func AsBlock(v types.Value) *Block {
	return v.V().(*Block)
}

// A BlockExpr is an expression that evaluates to a block value.
// The block itself is not run.
type BlockExpr struct {
	Block *Block
}

func (e *BlockExpr) Eval(*environment.Environment) (types.Value, error) {
	return NewBlockValue(e.Block), nil
}

func (e *BlockExpr) String() string {
	return "{ " + e.Block.String() + " }"
}
