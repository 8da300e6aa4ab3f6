package widgetlayout

import (
	"embed"
)

//go:embed data/sql/migrations/*.sql
var migrationsFS embed.FS

// GetMigrationsFS returns the SQL migrations creating the group and placement
// tables read by the bun storage provider.
func GetMigrationsFS() embed.FS {
	return migrationsFS
}
