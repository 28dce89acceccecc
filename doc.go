// Package finboard derives dashboard data from already fetched market and
// portfolio records.
//
// The core functionalities include:
//   - Price windows: slicing a newest-first daily price feed down to a chart
//     window (5d, 1m, 3m, 6m, ytd, 1y, 3y, 5y) ending on a reference date,
//     with display-ready points and the price change over the window.
//   - Dividend calendar: grouping dividend payments by year and month,
//     with yearly totals, monthly average, best month and a trailing series.
//   - Loading: decoding JSON documents, selecting the record array with a
//     JSONPath expression and validating the records.
//
// Every computation is a pure function of its inputs: nothing is cached and
// nothing is fetched. Dates that cannot be parsed are never replaced by
// "now"; the affected records are skipped and reported to the caller.
//
// This package serves as the foundational logic for the `fbd` command-line
// tool.
package finboard
