// Package arith evaluates arithmetic typed into a launcher or search box.
//
// The syntax is decimal literals joined by + - * / % and ^, with parentheses
// for grouping. "^" is exponentiation and binds tightest, right to left.
// Unary signs bind tighter than the other operators, so "-2^2" is the same as
// "-(2^2)" and "2^-1" the same as "2^(-1)". There are no variables, functions,
// or implicit multiplications: "2(3)" is an error.
//
// Integer arithmetic with + - * and % is exact. "999999999999999999 + 1"
// gives 1000000000000000000 rather than the nearest float64. Spaces in such
// expressions are ignored, so digit groups join: "1 000 * 3" gives 3000.
// Anything involving division, exponentiation, or a decimal point is computed
// in double precision and rounded to 15 significant digits, which hides binary
// representation noise: "0.1 + 0.2" gives 0.3.
//
// Use IsCandidate to decide cheaply whether a query is worth evaluating, then
// Evaluate to get a Result.
package arith
