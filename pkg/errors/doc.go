// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "GPU query timed out",
//	    ctx.Err(),
//	    map[string]interface{}{
//	        "command": "nvidia-smi",
//	        "timeout": defaults.CommandTimeout,
//	    },
//	)
//
// Collectors report category-level failures with the collector codes
// (ErrCodeUnsupportedPlatform, ErrCodeDependencyMissing, ...). CodeOf and
// MessageOf extract them when a snapshot placeholder is built.
package errors
