// Package selftrack provides the types and functions to keep a student's
// personal portfolio: profile, academic records, achievements, experiences
// and hobbies. It is designed to be local-first: the whole portfolio is a
// single aggregate, the AppState, persisted as one JSON document.
//
// The core functionalities include:
//   - Data Model: plain records with closed enumerations for the categorical
//     fields (achievement categories, experience types).
//   - State Container: the Tracker applies mutations as structural copies of
//     the aggregate and persists the whole aggregate after every change.
//   - Statistics: current and average GPA, counts and filters used by the
//     dashboard.
//   - Data Persistence: encoding and decoding of the aggregate to and from
//     JSON, validated against a JSON schema.
//
// Remote feedback lives in the feedback package, storage backends in the
// storage package and the `selftrack` command line tool in cmd.
package selftrack
