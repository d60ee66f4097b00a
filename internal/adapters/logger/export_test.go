// export_test.go exposes private helpers for white-box tests.
package logger

var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)
