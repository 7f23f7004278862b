/*
File    : lim/builtin/timestamp.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"fmt"
	"time"

	"github.com/akashmaji946/lim/value"
)

// timestampBuiltin implements host builtin id 1: timestamp(). Returns the
// current Unix epoch time in seconds as a Number, grounded on the
// teacher's std/time.go `now` builtin.
//
// Syntax: timestamp()
//
// Example:
//
//	let t = timestamp();
func timestampBuiltin(args []value.Value) (value.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("timestamp expects 0 arguments, got %d", len(args))
	}
	return value.Number(time.Now().Unix()), nil
}
