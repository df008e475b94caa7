// Package dataprocessing turns raw campaign archives into the three derived
// tables.
//
// # Loading
//
// Loader.Load discovers archives in name order, parses each .csv member with
// ParseCSV (or .xlsx member with ParseWorkbook) and appends the rows to a
// domain.UnifiedSet. Columns are the ordered union of every member header;
// a record from a member lacking a column simply has no value for it.
//
// # Normalization
//
// Per-column rules are data, not code paths:
//
//	JobRule          "admin." -> "admin", "blue-collar" -> "blue_collar"
//	EducationRule    "basic.4y" -> "basic_4y", "unknown" -> absent
//	FlagRule         trimmed, lower-cased value == Target -> 1, else Default
//
// LastContactDate combines the day and month columns into 2022-MM-DD.
//
// # Schema
//
// RequireColumns must pass before any transform runs, so a missing column
// is reported once, up front, with every other missing column.
//
//	set, err := loader.Load(ctx, "files/input")
//	if err := dataprocessing.RequireColumns(set); err != nil {
//	    return err
//	}
//	clients := dataprocessing.TransformClient(set)
package dataprocessing
