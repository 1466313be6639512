// Package scaffold turns a naming bundle into the NgRx and component
// boilerplate for one feature and writes it to disk.
//
// # Pipeline
//
//	suffix, slug, err := scaffold.ParseInput("features/user-profile")
//	bundle, err := naming.Derive(slug)
//	results, err := scaffold.Emit(ctx, afero.NewOsFs(), "/proj/src", suffix, bundle, scaffold.EmitOptions{})
//
// Plan is the pure half: it renders every template and returns the
// (path, content) pairs without touching the filesystem. Emit first
// materializes the target directory one segment at a time, then writes
// each file independently. A directory failure aborts the batch before
// any write; a write failure is recorded in that file's Result and the
// remaining files are still written. Existing files are overwritten and
// nothing is rolled back.
//
// # Files
//
// One file per TemplateKind, named {slug}.{suffix}.{ext}:
//
//	user-profile.actions.ts
//	user-profile.reducer.ts
//	user-profile.effects.ts
//	user-profile.service.ts
//	user-profile.module.ts
//	user-profile.component.ts
//	user-profile.component.scss
//	user-profile.component.html
package scaffold
