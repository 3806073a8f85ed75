package queue

type JobType string

const (
	JobThumbnail JobType = "thumbnail"
)

type Job struct {
	VideoID    string
	Type       JobType
	SourcePath string
}
