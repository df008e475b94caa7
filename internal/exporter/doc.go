// Package exporter serializes derived tables to flat files.
//
// CSVWriter.WriteTable writes a header row and one line per record,
// comma-delimited, truncating whatever was at the destination. Absent values
// are rendered as empty fields by the record types themselves.
//
//	writer := exporter.NewCSVWriter(paths, logger)
//	table := domain.NewTable("client", domain.ClientColumns, clients)
//	if err := writer.WriteTable("client.csv", table); err != nil {
//	    return err
//	}
package exporter
