// Package diagnostic provides structured warnings for the schema builder.
//
// Key capabilities:
//   - Duplicate name warnings (last entry wins)
//   - Field identifier collision warnings
//   - Discarded leaf binding warnings (namespace wins over value)
package diagnostic
