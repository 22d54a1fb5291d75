// internal/taskid/doc.go

/*
Package taskid validates and orders task identifiers.

Identifiers read from configuration files follow a dot-separated segment
format, e.g. `build.compile` or `deploy.region[2]`. Parse enforces that
format so that typos in `depends_on` lists surface as load errors with a
clear message instead of as unknown-dependency errors later on.

Compare defines the deterministic order used to break ties between tasks
that share a priority. It accepts any string, not only identifiers that
Parse would accept.
*/
package taskid
