// Package engine holds the set of open buffers.
//
// A Manager owns an ordered list of buffer.Buffer values and tracks which
// one is active. Navigation between buffers is cyclic: Next on the last
// buffer moves to the first and Prev on the first moves to the last.
//
// # Basic Usage
//
//	m := engine.NewManager(buffer.WithTabStop(8))
//	i := m.Create()      // appended, not activated
//	m.Activate(i)
//	b := m.Active()
//	b.InsertChar('x')
//
// Destroying a buffer releases its rows and compacts the list. The active
// index is corrected so that it keeps pointing at a valid buffer. When the
// last buffer is destroyed the manager is empty and Active returns nil;
// callers create a fresh buffer before continuing.
//
// # Thread Safety
//
// A Manager is not safe for concurrent use. The editor drives it from a
// single goroutine.
package engine
