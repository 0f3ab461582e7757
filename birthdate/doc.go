// Package birthdate validates and normalizes birth dates.
//
// Every Date is a Gregorian calendar day read from a UTC midnight, so the
// year, month and day handed to the matrix engine never drift with the
// local time zone. Validation happens once, here; downstream code trusts a
// Date without re-checking it.
//
// Accepted inputs:
//
//   - ISO calendar dates "YYYY-MM-DD" (Parse).
//   - RFC 3339 timestamps (Parse); the instant is converted to UTC first and
//     then truncated to its calendar day.
//   - time.Time values (FromTime), same UTC rule.
//   - explicit year/month/day integers (New).
//
// Errors:
//
//   - ErrInvalidDateFormat  input is not a parseable date
//   - ErrOutOfRangeDate     parseable, but not a real calendar day (2023-02-30)
//
// Both are reported through *FieldError, which names the offending field
// ("date", "year", "month" or "day"); match them with errors.Is.
package birthdate
