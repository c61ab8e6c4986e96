package service

// MetricsRecorder counts security and ingestion outcomes.
type MetricsRecorder interface {
	// RecordAuthOutcome counts one authentication attempt by result code ("ok" or an error code).
	RecordAuthOutcome(outcome string)
	// RecordIngestOutcome counts one /notify payload by result ("ok", "duplicate_ignored", an error code).
	RecordIngestOutcome(outcome string)
	// RecordRegistration counts one registration attempt by result.
	RecordRegistration(outcome string)
	// RecordNoncesPruned adds the number of nonces deleted by a prune pass.
	RecordNoncesPruned(count int64)
}
