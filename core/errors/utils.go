// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Helpers to inspect standardized errors: which module and
//              operation raised them, and whether they signal a violated
//              precondition.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-10-17 v0.2.0: errors.As based extraction, IsInvalidArgument

package errors

import (
	"errors"

	mdwerror "github.com/msto63/strx/core/error"
)

// ExtractDetails extracts all details from the first *Error in the chain
func ExtractDetails(err error) map[string]interface{} {
	var e *mdwerror.Error
	if errors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return err != nil && ExtractModule(err) == module
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return IsModuleError(err, module) && ExtractOperation(err) == operation
}

// IsInvalidArgument reports whether err signals a violated precondition:
// an invalid input or a value outside its valid range.
func IsInvalidArgument(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidInput) ||
		mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange)
}
