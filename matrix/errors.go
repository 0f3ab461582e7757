// SPDX-License-Identifier: MIT

package matrix

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownVariant indicates a Variant value or name outside the known set.
	ErrUnknownVariant = errors.New("matrix: unknown variant")

	// errTable marks a formula table that failed compilation; it only ever
	// surfaces as a panic during package initialization.
	errTable = errors.New("matrix: invalid formula table")
)
