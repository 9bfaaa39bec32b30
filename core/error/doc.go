// Package error provides the structured error type used by every strx package.
//
// Errors carry a Code for programmatic handling, a Severity for logging, and a
// details map with the module and operation that failed:
//
//	err := mdwerror.New("expected non-negative multiplier").
//		WithCode(mdwerror.CodeInvalidInput).
//		WithDetail("operation", "repeat")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
//		// caller error
//	}
//
// The package is usually imported under the alias mdwerror to avoid shadowing
// the standard errors package.
package error
