package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wu-catalog/models"
)

const buildsTable = "builds"

// buildColumns is the column order shared by every SELECT and INSERT on the
// builds table. scanBuild reads them in the same order.
var buildColumns = []string{
	"update_id",
	"update_guid",
	"revision_number",
	"machine",
	"ring",
	"content_type",
	"title",
	"description",
	"build_number",
	"created",
	"update_xml",
	"update_info_xml",
	"device_attributes",
	"caller_attributes",
	"products",
	"sync_current_only",
	"fetched_at",
	"localized_language",
	"localized_title",
	"localized_description",
}

// psql renders $n placeholders, which both pgx and sqlite3 bind by position.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildDeleteMachineBuildsQuery(machine string) (string, []any, error) {
	return psql.
		Delete(buildsTable).
		Where(sq.Eq{"machine": machine}).
		ToSql()
}

func buildInsertBuildQuery(b models.CachedBuild) (string, []any, error) {
	return psql.
		Insert(buildsTable).
		Columns(buildColumns...).
		Values(
			int64(b.UpdateID),
			b.UpdateGUID,
			b.RevisionNumber,
			b.Machine,
			b.Ring,
			b.ContentType,
			b.Title,
			b.Description,
			b.BuildNumber,
			b.Created.UTC(),
			b.UpdateXml,
			b.UpdateInfoXml,
			b.DeviceAttributes,
			b.CallerAttributes,
			b.Products,
			b.SyncCurrentOnly,
			b.FetchedAt.UTC(),
			b.Language,
			b.LocalizedTitle,
			b.LocalizedDescription,
		).
		ToSql()
}

func buildSelectMachineBuildsQuery(machine string) (string, []any, error) {
	return psql.
		Select(buildColumns...).
		From(buildsTable).
		Where(sq.Eq{"machine": machine}).
		OrderBy("created DESC", "update_id").
		ToSql()
}

func buildSelectBuildQuery(updateID uint64) (string, []any, error) {
	return psql.
		Select(buildColumns...).
		From(buildsTable).
		Where(sq.Eq{"update_id": int64(updateID)}).
		OrderBy("fetched_at DESC").
		Limit(1).
		ToSql()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBuild(row rowScanner) (models.CachedBuild, error) {
	var (
		b  models.CachedBuild
		id int64
	)
	err := row.Scan(
		&id,
		&b.UpdateGUID,
		&b.RevisionNumber,
		&b.Machine,
		&b.Ring,
		&b.ContentType,
		&b.Title,
		&b.Description,
		&b.BuildNumber,
		&b.Created,
		&b.UpdateXml,
		&b.UpdateInfoXml,
		&b.DeviceAttributes,
		&b.CallerAttributes,
		&b.Products,
		&b.SyncCurrentOnly,
		&b.FetchedAt,
		&b.Language,
		&b.LocalizedTitle,
		&b.LocalizedDescription,
	)
	b.UpdateID = uint64(id)
	return b, err
}
