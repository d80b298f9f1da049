package config

import "time"

type StorageConfig struct {
	// Mode selects the resume store: "local" or "s3".
	Mode      string
	UploadDir string
	AWSRegion string
	AWSBucket string

	// Pending-feedback queue tuning.
	FeedbackDrainInterval time.Duration
	FeedbackMaxAge        time.Duration
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		Mode:                  getEnv("STORAGE_MODE", "local"),
		UploadDir:             getEnv("UPLOAD_DIR", "./uploads"),
		AWSRegion:             getEnv("AWS_REGION", "ap-south-1"),
		AWSBucket:             getEnv("AWS_BUCKET", "talentbridge-resumes"),
		FeedbackDrainInterval: getEnvDuration("FEEDBACK_DRAIN_INTERVAL", time.Minute),
		FeedbackMaxAge:        getEnvDuration("FEEDBACK_MAX_AGE", time.Hour),
	}
}
