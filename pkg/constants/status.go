package constants

const (
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusProcessing = "processing"
	StatusOK         = "ok"
	StatusPending    = "pending"
)

const (
	// Segment dosya adı şablonu, 3 haneli sıfır dolgulu index.
	// Lexical sıralama = zaman sıralaması garantisi bu şablona dayanıyor
	// (10 saniyelik segmentlerde 1000 segmente kadar, yani ~2s46dk kaynak).
	SegmentFilePattern = "segment_%03d.mp4"
	SegmentFilePrefix  = "segment_"
	SegmentFileSuffix  = ".mp4"
	SegmentPadWidth    = 3

	ManifestFilename = "manifest.json"

	SourceFileExt = ".mp4"
)
