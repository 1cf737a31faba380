// Package tradesim implements a single-user stock trading simulator: a fixed
// in-memory market, an account holding cash and a portfolio, buy/sell trade
// execution, and persistence of the whole account to a single JSONL file.
//
// The interactive terminal application lives in cmd/ and tsim/.
package tradesim
