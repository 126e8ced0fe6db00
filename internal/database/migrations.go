package database

type migration struct {
	version int
	name    string
	sql     string
}

// migrations are forward only and listed in version order. Applied
// versions are recorded in schema_migrations.
var migrations = []migration{
	{1, "selections", migrationV1Selections},
	{2, "selection source", migrationV2SelectionSource},
}

// migrationV1Selections stores one selected date per user.
//
// The date is kept as ISO text (YYYY-MM-DD), never as a timestamp: a
// selection is a calendar day, not an instant.
const migrationV1Selections = `
CREATE TABLE IF NOT EXISTS selections (
    user_id TEXT PRIMARY KEY,
    date TEXT NOT NULL CHECK (length(date) = 10),
    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// migrationV2SelectionSource records which calendar the user last clicked
// in, so clients can restore focus on the same grid.
const migrationV2SelectionSource = `
ALTER TABLE selections ADD COLUMN source TEXT NOT NULL DEFAULT 'gregorian'
    CHECK (source IN ('gregorian', 'ifc'));

CREATE INDEX IF NOT EXISTS idx_selections_updated
    ON selections(updated_at);
`
