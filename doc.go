// Package carbontrack provides the ledger and analytics engine for a
// personal carbon-footprint tracker. It is local-first: every user's record
// lives in a plain JSON file the user fully owns.
//
// The core functionalities include:
//   - Activity Ledger: Recording timestamped activity entries with their
//     derived footprint in kg CO2e, addressable by position for edits and
//     deletions.
//   - Footprint Analytics: Stateless aggregation of a log history into
//     rolling weekly totals, per-category breakdowns, daily series, and the
//     top contributing category.
//   - Goal Tracking: A per-user reduction target with a daily or weekly
//     period and a one-shot first-run flow.
//   - Population Comparison: A persisted synthetic baseline sample combined
//     with a live scan of all stored users, to compare a user's weekly total
//     against the population average.
//   - Data Persistence: Whole-record JSON storage with atomic replacement,
//     default-initialization for missing or corrupt records, and a CSV
//     export of the log history.
//
// This package serves as the foundational logic for the `cft` command-line
// tool, which adds formatting and flow but no business logic of its own.
package carbontrack
