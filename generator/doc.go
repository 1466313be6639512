// Package generator provides the building blocks for template-based file
// generation: filesystem operations, an executor with dry-run support,
// and a caching template renderer.
//
// # Operations
//
// Every filesystem change is an Operation bound to an afero.Fs, so the
// same code runs against the real disk or an in-memory filesystem:
//
//	fsys := afero.NewOsFs()
//	ops := []generator.Operation{
//	    &generator.MkdirOp{Fs: fsys, Path: "src/app/features", Mode: 0755},
//	    &generator.WriteFileOp{Fs: fsys, Path: "src/app/features/a.ts", Content: data, Mode: 0644},
//	}
//	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{}); err != nil {
//	    return err
//	}
//
// MkdirOp creates exactly one directory level and treats an existing
// directory as success. WriteFileOp overwrites unconditionally.
//
// # Rendering
//
// Renderer parses text/template sources once and caches them. Templates
// get case helpers (camel, class, constant, human, plural, ...) that
// follow the naming package rules.
package generator
