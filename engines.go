package plist

import (
	"github.com/npillmayer/plist/avl"
	"github.com/npillmayer/plist/btree"
)

// avlList adapts an AVL tree to the List interface.
type avlList[V any] struct {
	*avl.Tree[V]
}

var _ List[int] = avlList[int]{}

func (l avlList[V]) AtFirst() Cursor[V] {
	return l.Tree.AtFirst()
}

func (l avlList[V]) AtIndex(index int) Cursor[V] {
	return l.Tree.AtIndex(index)
}

func (l avlList[V]) AtEqual(f Pathfinder[V], leftSeekBias bool) Cursor[V] {
	return l.Tree.AtEqual(f, leftSeekBias)
}

func (l avlList[V]) Fork() List[V] {
	return avlList[V]{l.Tree.Fork()}
}

func (l avlList[V]) Inserted(index int, v V) List[V] {
	return avlList[V]{l.Tree.Inserted(index, v)}
}

func (l avlList[V]) Deleted(index int) List[V] {
	return avlList[V]{l.Tree.Deleted(index)}
}

func (l avlList[V]) Replaced(index int, v V) List[V] {
	return avlList[V]{l.Tree.Replaced(index, v)}
}

func (l avlList[V]) Applied(ops []Op[V]) List[V] {
	return avlList[V]{l.Tree.Applied(ops)}
}

// btreeList adapts a B-tree to the List interface.
type btreeList[V any] struct {
	*btree.Tree[V]
}

var _ List[int] = btreeList[int]{}

func (l btreeList[V]) AtFirst() Cursor[V] {
	return l.Tree.AtFirst()
}

func (l btreeList[V]) AtIndex(index int) Cursor[V] {
	return l.Tree.AtIndex(index)
}

func (l btreeList[V]) AtEqual(f Pathfinder[V], leftSeekBias bool) Cursor[V] {
	return l.Tree.AtEqual(f, leftSeekBias)
}

func (l btreeList[V]) Fork() List[V] {
	return btreeList[V]{l.Tree.Fork()}
}

func (l btreeList[V]) Inserted(index int, v V) List[V] {
	return btreeList[V]{l.Tree.Inserted(index, v)}
}

func (l btreeList[V]) Deleted(index int) List[V] {
	return btreeList[V]{l.Tree.Deleted(index)}
}

func (l btreeList[V]) Replaced(index int, v V) List[V] {
	return btreeList[V]{l.Tree.Replaced(index, v)}
}

func (l btreeList[V]) Applied(ops []Op[V]) List[V] {
	return btreeList[V]{l.Tree.Applied(ops)}
}
