// Package output provides styled terminal notifications for ngrxgen.
//
// # Usage
//
//	output.Success("File user-profile.actions.ts created.")
//	output.Error("cannot write user-profile.service.ts: permission denied")
//	output.Info("Next steps:")
//	output.Step("import UserProfileModule in app.module.ts")
//
// # Verbose Mode
//
//	output.SetVerbose(true)
//	output.Verbose("Planned 8 file(s) for user-profile")
//
// # Testing
//
// Package-level functions write through a default Printer bound to
// os.Stdout. Tests swap it with SetDefault(output.New(&buf)) instead of
// redirecting stdout.
//
// # Styling
//
//   - Success: ✔ green bold
//   - Error: ✖ red bold
//   - Info: cyan
//   - Step: indented gray
//   - Verbose: gray (when enabled)
package output
