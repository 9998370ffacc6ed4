package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "ZENNSTATS_CONFIG"
	baseURLEnv        = "ZENN_BASE_URL"
	userAgentEnv      = "USER_AGENT"
	apiTimeoutEnv     = "API_TIMEOUT"
	listEveryEnv      = "LIST_EVERY"
	userEveryEnv      = "USER_EVERY"
	discoveryPagesEnv = "DISCOVERY_PAGES"
	aggregatorEnv     = "AGGREGATOR_MODE"
	workersEnv        = "WORKERS"
	inputPathEnv      = "INPUT_PATH"
	topNEnv           = "TOP_N"
	rankingOutputEnv  = "RANKING_OUTPUT"
	articlesOutputEnv = "ARTICLES_OUTPUT"
	displayTopEnv     = "DISPLAY_TOP"
	reportPathEnv     = "REPORT_PATH"
	dashboardAddrEnv  = "DASHBOARD_ADDR"
	logLevelEnv       = "LOG_LEVEL"
)

// Config holds every knob the tools read. It is loaded once in main and
// passed down explicitly; nothing reads the environment after Load returns.
type Config struct {
	API        APIConfig       `yaml:"api"`
	Discovery  DiscoveryConfig `yaml:"discovery"`
	Aggregator string          `yaml:"aggregator"` // articles, profile, or mock
	Workers    int             `yaml:"workers"`
	Input      InputConfig     `yaml:"input"`
	Ranking    RankingConfig   `yaml:"ranking"`
	Articles   ArticlesConfig  `yaml:"articles"`
	Display    DisplayConfig   `yaml:"display"`
	Report     ReportConfig    `yaml:"report"`
	Dashboard  DashboardConfig `yaml:"dashboard"`
	Logging    LoggingConfig   `yaml:"logging"`
}

// APIConfig describes how to reach the Zenn API. The durations are env-only
// (API_TIMEOUT, LIST_EVERY, USER_EVERY): YAML has no duration syntax.
type APIConfig struct {
	BaseURL   string        `yaml:"baseUrl"`
	UserAgent string        `yaml:"userAgent"`
	Timeout   time.Duration `yaml:"-"`
	ListEvery time.Duration `yaml:"-"`
	UserEvery time.Duration `yaml:"-"`
}

// DiscoveryConfig bounds the trending walk that seeds the ranking.
type DiscoveryConfig struct {
	MaxPages int `yaml:"maxPages"`
}

// InputConfig names the URL list consumed by the articles and stats tools.
type InputConfig struct {
	Path string `yaml:"path"`
}

// RankingConfig shapes the ranking tool's output.
type RankingConfig struct {
	TopN       int    `yaml:"topN"`
	OutputPath string `yaml:"outputPath"`
}

// ArticlesConfig shapes the article export tool's output.
type ArticlesConfig struct {
	OutputPath string `yaml:"outputPath"`
}

// DisplayConfig bounds the console table printed after a ranking run.
type DisplayConfig struct {
	Top int `yaml:"top"`
}

// ReportConfig names the HTML chart report; an empty path disables it.
type ReportConfig struct {
	Path string `yaml:"path"`
}

// DashboardConfig enables the post-run chart server when Addr is non-empty.
type DashboardConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig sets the slog level for all components.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load builds the configuration from defaults, then an optional YAML file
// named by $ZENNSTATS_CONFIG, then environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	c.API.BaseURL = getEnv(baseURLEnv, c.API.BaseURL)
	c.API.UserAgent = getEnv(userAgentEnv, c.API.UserAgent)
	c.API.Timeout = getEnvDuration(apiTimeoutEnv, c.API.Timeout)
	c.API.ListEvery = getEnvDuration(listEveryEnv, c.API.ListEvery)
	c.API.UserEvery = getEnvDuration(userEveryEnv, c.API.UserEvery)

	c.Discovery.MaxPages = getEnvInt(discoveryPagesEnv, c.Discovery.MaxPages)
	c.Aggregator = getEnv(aggregatorEnv, c.Aggregator)
	c.Workers = getEnvInt(workersEnv, c.Workers)

	c.Input.Path = getEnv(inputPathEnv, c.Input.Path)
	c.Ranking.TopN = getEnvInt(topNEnv, c.Ranking.TopN)
	c.Ranking.OutputPath = getEnv(rankingOutputEnv, c.Ranking.OutputPath)
	c.Articles.OutputPath = getEnv(articlesOutputEnv, c.Articles.OutputPath)

	c.Display.Top = getEnvInt(displayTopEnv, c.Display.Top)
	c.Report.Path = getEnv(reportPathEnv, c.Report.Path)
	c.Dashboard.Addr = getEnv(dashboardAddrEnv, c.Dashboard.Addr)
	c.Logging.Level = getEnv(logLevelEnv, c.Logging.Level)
}

func mergeConfig(base, override Config) Config {
	if override.API.BaseURL != "" {
		base.API.BaseURL = override.API.BaseURL
	}
	if override.API.UserAgent != "" {
		base.API.UserAgent = override.API.UserAgent
	}

	if override.Discovery.MaxPages > 0 {
		base.Discovery.MaxPages = override.Discovery.MaxPages
	}
	if override.Aggregator != "" {
		base.Aggregator = override.Aggregator
	}
	if override.Workers > 0 {
		base.Workers = override.Workers
	}

	if override.Input.Path != "" {
		base.Input.Path = override.Input.Path
	}
	if override.Ranking.TopN > 0 {
		base.Ranking.TopN = override.Ranking.TopN
	}
	if override.Ranking.OutputPath != "" {
		base.Ranking.OutputPath = override.Ranking.OutputPath
	}
	if override.Articles.OutputPath != "" {
		base.Articles.OutputPath = override.Articles.OutputPath
	}

	if override.Display.Top > 0 {
		base.Display.Top = override.Display.Top
	}
	if override.Report.Path != "" {
		base.Report.Path = override.Report.Path
	}
	if override.Dashboard.Addr != "" {
		base.Dashboard.Addr = override.Dashboard.Addr
	}
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "https://zenn.dev/api",
			UserAgent: "zennstats/0.3 (+https://github.com/zennstats/zennstats)",
			Timeout:   15 * time.Second,
			ListEvery: 300 * time.Millisecond,
			UserEvery: 100 * time.Millisecond,
		},
		Discovery:  DiscoveryConfig{MaxPages: 50},
		Aggregator: "articles",
		Workers:    4,
		Input:      InputConfig{Path: "url_list.csv"},
		Ranking:    RankingConfig{TopN: 100, OutputPath: "zenn_user_likes_ranking_top100.csv"},
		Articles:   ArticlesConfig{OutputPath: "zenn_articles.csv"},
		Display:    DisplayConfig{Top: 30},
		Report:     ReportConfig{Path: "zenn_ranking_report.html"},
		Dashboard:  DashboardConfig{Addr: ""},
		Logging:    LoggingConfig{Level: "info"},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
