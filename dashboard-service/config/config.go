package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Bipul-Dubey/placement-dashboard/shared/placement"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the dashboard service
type Config struct {
	Port    string `yaml:"port"`
	GinMode string `yaml:"gin_mode"`

	ArtifactDir       string `yaml:"artifact_dir"`
	ClassifierFile    string `yaml:"classifier_file"`
	BranchEncoderFile string `yaml:"branch_encoder_file"`
	InternEncoderFile string `yaml:"intern_encoder_file"`

	ReportPath  string `yaml:"report_path"`
	DBPath      string `yaml:"db_path"`
	MaxUploadMB int    `yaml:"max_upload_mb"`
	PreviewRows int    `yaml:"preview_rows"`

	AllowedOrigins []string `yaml:"allowed_origins"`

	ReportBucket          string `yaml:"report_bucket"`
	ReportBucketRegion    string `yaml:"report_bucket_region"`
	ReportBucketEndpoint  string `yaml:"report_bucket_endpoint"`
	ReportBucketAccessKey string `yaml:"report_bucket_access_key"`
	ReportBucketSecretKey string `yaml:"report_bucket_secret_key"`
}

// LoadConfig reads config.yaml (or CONFIG_PATH) if present, then applies
// environment overrides and defaults.
func LoadConfig() (*Config, error) {
	var cfg Config

	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	envOverride(&cfg.Port, "PORT")
	envOverride(&cfg.GinMode, "GIN_MODE")
	envOverride(&cfg.ArtifactDir, "ARTIFACT_DIR")
	envOverride(&cfg.ClassifierFile, "CLASSIFIER_FILE")
	envOverride(&cfg.BranchEncoderFile, "BRANCH_ENCODER_FILE")
	envOverride(&cfg.InternEncoderFile, "INTERN_ENCODER_FILE")
	envOverride(&cfg.ReportPath, "REPORT_PATH")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.ReportBucket, "REPORT_BUCKET")
	envOverride(&cfg.ReportBucketRegion, "REPORT_BUCKET_REGION")
	envOverride(&cfg.ReportBucketEndpoint, "REPORT_BUCKET_ENDPOINT")
	envOverride(&cfg.ReportBucketAccessKey, "REPORT_BUCKET_ACCESS_KEY")
	envOverride(&cfg.ReportBucketSecretKey, "REPORT_BUCKET_SECRET_KEY")
	if err := envOverrideInt(&cfg.MaxUploadMB, "MAX_UPLOAD_MB"); err != nil {
		return nil, err
	}
	if err := envOverrideInt(&cfg.PreviewRows, "PREVIEW_ROWS"); err != nil {
		return nil, err
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	// Defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.ArtifactDir == "" {
		cfg.ArtifactDir = "artifacts"
	}
	if cfg.ClassifierFile == "" {
		cfg.ClassifierFile = placement.DefaultClassifierFile
	}
	if cfg.BranchEncoderFile == "" {
		cfg.BranchEncoderFile = placement.DefaultBranchEncoderFile
	}
	if cfg.InternEncoderFile == "" {
		cfg.InternEncoderFile = placement.DefaultInternEncoderFile
	}
	if cfg.ReportPath == "" {
		cfg.ReportPath = "Student_Placement_Report.pdf"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "placement.db"
	}
	if cfg.MaxUploadMB == 0 {
		cfg.MaxUploadMB = 10
	}
	if cfg.PreviewRows == 0 {
		cfg.PreviewRows = 5
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if cfg.ReportBucketRegion == "" {
		cfg.ReportBucketRegion = "auto"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port '%s': %w", c.Port, err)
	}
	switch c.GinMode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("gin_mode must be debug, release or test, got '%s'", c.GinMode)
	}
	if c.MaxUploadMB < 1 {
		return fmt.Errorf("invalid max_upload_mb '%d': must be >= 1", c.MaxUploadMB)
	}
	if c.PreviewRows < 1 {
		return fmt.Errorf("invalid preview_rows '%d': must be >= 1", c.PreviewRows)
	}
	if filepath.Ext(c.ReportPath) != ".pdf" {
		return fmt.Errorf("report_path '%s' must end in .pdf", c.ReportPath)
	}
	if c.ReportBucket != "" && (c.ReportBucketAccessKey == "") != (c.ReportBucketSecretKey == "") {
		return fmt.Errorf("report_bucket_access_key and report_bucket_secret_key must be set together")
	}
	return nil
}

// ArtifactPaths resolves the three artifact files under ArtifactDir.
func (c *Config) ArtifactPaths() placement.ArtifactPaths {
	return placement.ArtifactPaths{
		Classifier:    filepath.Join(c.ArtifactDir, c.ClassifierFile),
		BranchEncoder: filepath.Join(c.ArtifactDir, c.BranchEncoderFile),
		InternEncoder: filepath.Join(c.ArtifactDir, c.InternEncoderFile),
	}
}

func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func (c *Config) MirrorEnabled() bool {
	return c.ReportBucket != ""
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) error {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", envKey, val, err)
		}
		*field = parsed
	}
	return nil
}
