// Package palette builds ANSI SGR escape sequences and hands out label colors.
//
// The Allocator keeps a table of label colors and a recency queue holding the
// five rotation colors. An unseen label takes the least recently used color,
// so a handful of busy labels stay visually distinct while unrelated labels
// eventually share colors. Seeded labels (KnownTags plus any configured
// seeds) keep their fixed color; when that color is outside the rotation the
// queue is left untouched.
//
// Allocators are independent values. Each stream owns one; the internal mutex
// only matters when an allocator is shared.
package palette
