// Package hyperbtc answers one question: if bitcoin absorbed a wealth pool's
// entire net worth, how much of it would you need to keep your rank?
//
// The core functionalities include:
//   - Wealth Distributions: Built-in datasets anchoring net worth thresholds
//     to wealth percentiles, global (UBS Global Wealth Report 2024) and US
//     (Federal Reserve Survey of Consumer Finances).
//   - Percentile Engine: Linear interpolation between breakpoints, in both
//     directions (net worth to percentile and percentile to net worth),
//     clamped at the distribution's ends.
//   - Scenario Calculator: A pure evaluation of the bitcoin needed at the
//     hyperbitcoinization clearing price, with supply and wealth shares.
//   - Reports: Threshold tables over a standard percentile set and sampled
//     distribution curves for plotting.
//   - Price Oracle: A live market quote with a fixed fallback, so the
//     reality check works offline too.
//
// This package serves as the foundational logic for the `hbc` command-line
// tool, ensuring that all modes and views compute from a single engine.
package hyperbtc
