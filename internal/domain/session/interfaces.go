package session

import "context"

// Archiver receives session records as they are removed by a sweep.
// The registry does not read archived data back; archival is best-effort
// and purely for post-hoc inspection.
type Archiver interface {
	ArchiveSession(ctx context.Context, rec *Record) error
}
