package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Schedule ScheduleConfig
	Search   SearchConfig
	Upload   UploadConfig
}

type AppConfig struct {
	Port         string
	Env          string
	Practitioner string
}

// ScheduleConfig drives the auto-scheduling engine
type ScheduleConfig struct {
	IntervalDays    int
	DefaultType     string
	DefaultDuration int
	DefaultTime     string
	SkipWeekends    bool
}

type SearchConfig struct {
	MinQueryLength int
	MaxResults     int
}

type UploadConfig struct {
	MaxFileSize          int64
	AutoApproveThreshold float64
	ActivityFeedSize     int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	setDefaults()

	// A missing .env is fine; defaults and the environment cover everything
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port:         viper.GetString("APP_PORT"),
			Env:          viper.GetString("APP_ENV"),
			Practitioner: viper.GetString("APP_PRACTITIONER"),
		},
		Schedule: ScheduleConfig{
			IntervalDays:    viper.GetInt("SCHEDULE_INTERVAL_DAYS"),
			DefaultType:     viper.GetString("SCHEDULE_DEFAULT_TYPE"),
			DefaultDuration: viper.GetInt("SCHEDULE_DEFAULT_DURATION"),
			DefaultTime:     viper.GetString("SCHEDULE_DEFAULT_TIME"),
			SkipWeekends:    viper.GetBool("SCHEDULE_SKIP_WEEKENDS"),
		},
		Search: SearchConfig{
			MinQueryLength: viper.GetInt("SEARCH_MIN_QUERY_LENGTH"),
			MaxResults:     viper.GetInt("SEARCH_MAX_RESULTS"),
		},
		Upload: UploadConfig{
			MaxFileSize:          viper.GetInt64("UPLOAD_MAX_FILE_SIZE"),
			AutoApproveThreshold: viper.GetFloat64("UPLOAD_AUTO_APPROVE_THRESHOLD"),
			ActivityFeedSize:     viper.GetInt("ACTIVITY_FEED_SIZE"),
		},
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PRACTITIONER", "Dr. Denisa")

	viper.SetDefault("SCHEDULE_INTERVAL_DAYS", 14)
	viper.SetDefault("SCHEDULE_DEFAULT_TYPE", "Adjustment")
	viper.SetDefault("SCHEDULE_DEFAULT_DURATION", 45)
	viper.SetDefault("SCHEDULE_DEFAULT_TIME", "10:00")
	viper.SetDefault("SCHEDULE_SKIP_WEEKENDS", true)

	viper.SetDefault("SEARCH_MIN_QUERY_LENGTH", 2)
	viper.SetDefault("SEARCH_MAX_RESULTS", 10)

	viper.SetDefault("UPLOAD_MAX_FILE_SIZE", 50*1024*1024)
	viper.SetDefault("UPLOAD_AUTO_APPROVE_THRESHOLD", 0.8)
	viper.SetDefault("ACTIVITY_FEED_SIZE", 50)
}
