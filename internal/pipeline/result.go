package pipeline

// DocumentResult is the outcome of extracting and normalizing one uploaded
// document. Err is nil when the document produced records.
type DocumentResult struct {
	Name    string
	Records int
	Err     error
}

// RecordResult is the outcome of persisting one question record.
type RecordResult struct {
	QuestionStem string
	SourceFile   string
	Err          error
}

// BatchResult partitions a batch run into per-document and per-record
// outcomes. No single failure aborts the batch; AnyFailures tells the
// operator whether the summary needs a closer look.
type BatchResult struct {
	Documents []DocumentResult
	Records   []RecordResult

	Parsed      int
	Upserted    int
	AnyFailures bool
}
