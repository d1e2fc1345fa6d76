// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collections

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// describeLimit is the number of elements rendered by Describe.
const describeLimit = 3

// Describe renders a container summary such as <Vector 4 ["a", "b", "c", ...]>.
func Describe[T any](kind string, size int, values iter.Seq[T]) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(kind)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(size))
	if size == 0 {
		b.WriteByte('>')
		return b.String()
	}

	b.WriteString(" [")
	n := 0
	for value := range values {
		if n == describeLimit {
			b.WriteString(", ...")
			break
		}
		if n > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%#v", value)
		n++
	}
	b.WriteString("]>")
	return b.String()
}
