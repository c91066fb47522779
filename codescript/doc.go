// Package codescript implements the CodeScript interpreter, a small
// imperative scripting language evaluated by walking its syntax tree:
//   - Assignments `name = expr` into one flat, program-wide namespace.
//   - Literals for integers, floats, strings ('...' or "..."), booleans and null.
//   - `+` (also spelled `&`) for addition and string concatenation, `-`, and `<`.
//   - Calls of native functions such as `DISPLAY(a, b)`.
//   - Pre-test loops `while cond { ... } else { ... }` and `until cond { ... }`,
//     where the else block runs once if the loop body never does.
//
// Other operators and `if` blocks are parsed but rejected at run time with an
// UnsupportedOperation error. Comments begin with `#`. Any runtime error
// aborts the whole run; scripts cannot recover from errors.
package codescript
