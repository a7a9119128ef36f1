package codebuilder

import "errors"

// SkipBlock can be returned by a WalkFunc visiting a block element to skip
// that block's children. Returned for any other element it ends the walk
// without an error.
var SkipBlock = errors.New("skip this block")

// WalkFunc is called for every element reached by Walk. depth is the depth
// of the block containing e; the children of a block element are visited at
// depth+1.
type WalkFunc func(depth int, e Element) error

// Walk visits the elements of b depth-first in insertion order, starting at
// depth zero. It stops at the first error returned by fn other than
// SkipBlock. Walk never modifies the tree.
func Walk(b *Block, fn WalkFunc) error {
	if b == nil {
		return nil
	}
	if err := walk(b, 0, fn); err != nil && !errors.Is(err, SkipBlock) {
		return err
	}
	return nil
}

func walk(b *Block, depth int, fn WalkFunc) error {
	for _, e := range b.elements {
		err := fn(depth, e)
		if e.kind != KindBlock {
			if err != nil {
				return err
			}
			continue
		}
		if errors.Is(err, SkipBlock) {
			continue
		}
		if err != nil {
			return err
		}
		if err := walk(e.block, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
