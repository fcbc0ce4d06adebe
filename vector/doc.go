// Package vector implements the runtime's foundational container: a
// resizable, double-ended array of fixed-stride elements.
//
// Every list/array-typed value manipulated by compiled contracts is backed
// by a Vector, as is a fair amount of compiler-internal bookkeeping. The
// design pulls in three directions at once:
//
//   - flat, contiguous, stride-addressed storage for bulk access
//   - an opt-in guard combining per-call mutual exclusion with explicit
//     multi-call critical sections
//   - element access that either borrows a transient alias into storage or
//     materializes an independently-owned copy through the runtime's
//     value.Context
//
// # Borrow vs Materialize
//
// BorrowAt and friends return views into container-owned storage. A borrowed
// slice is valid only until the next mutating call; growth reallocates the
// buffer and removal shifts elements under it. GetAt and friends return
// materialized copies that are safe to hold across mutations. For managed
// vectors (constructed with WithContext) materialization retains the stored
// value through the context instead of duplicating handle bytes, so the copy
// has its own lifetime in the runtime's object model.
//
// # Thread Safety
//
// By default a Vector is not safe for concurrent use. WithThreadSafe()
// installs a guard that every exported operation acquires for its own
// duration, making single calls atomic with respect to each other. For
// multi-call sequences (read-modify-write, cursor iteration under
// concurrent writers) use Locked, which holds the guard once and hands the
// callback a view whose operations skip per-call locking:
//
//	err := v.Locked(func(tx *vector.Tx) error {
//		val, err := tx.GetLast()
//		if err != nil {
//			return err
//		}
//		return tx.AddFirst(val)
//	})
//
// Lock acquisition blocks indefinitely; there are no lock timeouts and no
// fairness guarantee among waiting goroutines.
package vector
