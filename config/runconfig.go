package config

import (
	"os"
	"strconv"
)

// RunConfig carries everything a pipeline run needs. Components receive it
// at construction; none of them read process-wide state.
type RunConfig struct {
	Location            string
	DataDir             string
	OutputDir           string
	BackupRetentionDays int
}

const defaultBackupRetentionDays = 30

func LoadRunConfig() RunConfig {
	cfg := RunConfig{
		Location:            os.Getenv("OPS_LOCATION"),
		DataDir:             os.Getenv("OPS_DATA_DIR"),
		OutputDir:           os.Getenv("OPS_OUTPUT_DIR"),
		BackupRetentionDays: defaultBackupRetentionDays,
	}
	if cfg.Location == "" {
		cfg.Location = "Kingsville"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if v := os.Getenv("OPS_BACKUP_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BackupRetentionDays = n
		}
	}
	return cfg
}
