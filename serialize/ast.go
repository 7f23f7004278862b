/*
File    : lim/serialize/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package serialize turns a parsed *ast.Block into a stable byte encoding
// and back, so the `build` command can compile a source file once and the
// `run` command can load the result without re-parsing.
//
// The wire format is a 4-byte magic, a version byte, then a gob stream of
// the *ast.Block. gob is the only encoding with a precedent anywhere in
// the retrieved pack (ardnew-aenv's lang/cache.go hashes option structs
// through encoding/gob); no third-party serialization library appears in
// any example go.mod, so the stdlib encoding is used here rather than an
// ecosystem dependency.
package serialize

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/akashmaji946/lim/ast"
	"github.com/akashmaji946/lim/value"
)

// magic identifies a Lim compiled-AST file so Decode can reject garbage
// input with a clear error instead of a confusing gob decode failure.
var magic = [4]byte{'L', 'I', 'M', 0}

// Version1 is the only format version so far. The original distillation
// this package is grounded on shipped no version tag at all; one is added
// here so a future incompatible encoding change can be detected instead
// of silently misread.
const Version1 byte = 1

func init() {
	gob.Register(&ast.Literal{})
	gob.Register(&ast.Identifier{})
	gob.Register(&ast.Tuple{})
	gob.Register(&ast.Vector{})
	gob.Register(&ast.Index{})
	gob.Register(&ast.BinaryOp{})
	gob.Register(&ast.LogicalOp{})
	gob.Register(&ast.UnaryOp{})
	gob.Register(&ast.Block{})
	gob.Register(&ast.Let{})
	gob.Register(&ast.Assignment{})
	gob.Register(&ast.Conditional{})
	gob.Register(&ast.Loop{})
	gob.Register(&ast.FunctionDefinition{})
	gob.Register(&ast.FunctionCall{})
	gob.Register(&ast.Return{})
	gob.Register(&ast.Break{})

	gob.Register(value.Number(0))
	gob.Register(value.Boolean(false))
	gob.Register(value.String(""))
	gob.Register(value.Null{})
}

// Encode renders root as a versioned byte stream.
func Encode(root *ast.Block) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.WriteByte(Version1)
	if err := gob.NewEncoder(&buf).Encode(root); err != nil {
		return nil, fmt.Errorf("serialize: encode AST: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode, rejecting anything that doesn't start with the
// expected magic or carries an unknown version.
func Decode(data []byte) (*ast.Block, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("serialize: input too short to be a compiled Lim program")
	}
	if !bytes.Equal(data[:4], magic[:]) {
		return nil, fmt.Errorf("serialize: not a Lim compiled program (bad magic)")
	}
	switch version := data[4]; version {
	case Version1:
		var root ast.Block
		if err := gob.NewDecoder(bytes.NewReader(data[5:])).Decode(&root); err != nil {
			return nil, fmt.Errorf("serialize: decode AST: %w", err)
		}
		return &root, nil
	default:
		return nil, fmt.Errorf("serialize: unsupported compiled Lim program version %d", data[4])
	}
}

// WriteTo encodes root and writes it to w, mirroring the shape of the
// common io.WriterTo pattern so callers can plug in a bufio.Writer.
func WriteTo(w io.Writer, root *ast.Block) error {
	data, err := Encode(root)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
