// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported helpers to the external matrix_test package
// without widening the production API.

// ValidateTol exposes validateTol.
var ValidateTol = validateTol
