// Package computor evaluates arithmetic expressions over arbitrary-precision
// decimal and complex numbers.
//
// Evaluation runs in three stages. Tokenize splits text into raw tokens.
// Classify turns tokens into lexemes, deciding whether each + or - is unary or
// binary from the lexeme before it and replacing variable references with
// their values. Context.Eval reduces the lexemes with an operator buffer and
// a value stack.
//
// The operators, from loosest to tightest binding, are binary + and -; *, /,
// %, and ^; and unary + and -. All binary operators associate left except ^.
// Unary operators bind tighter than ^, so "-2^2" is 4. Exponents must be
// integers. Division and negative powers keep as many fractional digits as
// the context's precision, 20 by default.
//
// A Store holds variables and functions of one parameter. Functions may call
// other functions; nested calls are limited by the context's MaxDepth.
package computor
