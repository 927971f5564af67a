package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations must be listed in ascending version order starting at 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS lists (
	id   INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS todos (
	id      INTEGER PRIMARY KEY,
	text    TEXT NOT NULL,
	checked BOOLEAN NOT NULL DEFAULT 0,
	list_id INTEGER NOT NULL REFERENCES lists(id)
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
