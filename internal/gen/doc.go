// Package gen provides deterministic Go code generation for the derived
// record schema.
//
// Generation approach uses text/template + go/format for readable output.
//
// For every record it emits a struct declaration and a constructor; leaf
// fields resolve through an environment lookup keyed by the original dotted
// name, nested fields call the child record's constructor. A missing
// variable aborts construction with an error naming the exact key.
package gen
