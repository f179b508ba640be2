package devops

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// AppConfig is the full service configuration. In deployed
// environments it lives as a YAML document in an SSM parameter; local
// runs fall back to environment variables.
type AppConfig struct {
	DSN            string `yaml:"dsn"`
	SigningSecret  string `yaml:"signingSecret"` // base64
	Timezone       string `yaml:"timezone"`
	FullDayCutoff  string `yaml:"fullDayCutoff"` // "10:15"
	HalfDayCutoff  string `yaml:"halfDayCutoff"` // "13:30"
	ReportBucket   string `yaml:"reportBucket"`
	MaxConnections int    `yaml:"maxConnections"`

	SlackBotToken     string `yaml:"slackBotToken"`
	SlackInfoChannel  string `yaml:"slackInfoChannel"`
	SlackErrorChannel string `yaml:"slackErrorChannel"`
}

var (
	once    sync.Once
	cfg     *AppConfig
	loadErr error
)

func LoadAppConfig(ctx context.Context) (*AppConfig, error) {
	once.Do(func() {
		paramName := os.Getenv("ATTENDLY_CONFIG_PARAM")
		if paramName == "" {
			cfg = fromEnv()
			return
		}

		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			loadErr = fmt.Errorf("load aws config: %w", err)
			return
		}

		client := ssm.NewFromConfig(awsCfg)

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(paramName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}

		var parsed AppConfig
		if err := yaml.Unmarshal([]byte(*out.Parameter.Value), &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		cfg = &parsed
	})

	return cfg, loadErr
}

func fromEnv() *AppConfig {
	maxConns := 10
	if v, err := strconv.Atoi(os.Getenv("ATTENDLY_MAX_CONNECTIONS")); err == nil && v > 0 {
		maxConns = v
	}
	return &AppConfig{
		DSN:            os.Getenv("DSN"),
		SigningSecret:  os.Getenv("ATTENDLY_SIGNING_SECRET"),
		Timezone:       os.Getenv("ATTENDLY_TIMEZONE"),
		FullDayCutoff:  os.Getenv("ATTENDLY_FULL_DAY_CUTOFF"),
		HalfDayCutoff:  os.Getenv("ATTENDLY_HALF_DAY_CUTOFF"),
		ReportBucket:   os.Getenv("ATTENDLY_REPORT_BUCKET"),
		MaxConnections: maxConns,

		SlackBotToken:     os.Getenv("SLACK_BOT_TOKEN"),
		SlackInfoChannel:  os.Getenv("SLACK_INFO_CHANNEL"),
		SlackErrorChannel: os.Getenv("SLACK_ERROR_CHANNEL"),
	}
}
