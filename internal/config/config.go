package config

import (
	"os"
	"strings"
)

// Config is a one-shot snapshot of the environment, read at startup and
// passed into constructors. Nothing reads os.Getenv after Load.
type Config struct {
	Port        string
	FrontendURL string
	DatabaseURL string
	RedisURL    string

	LLMProvider     string
	LLMModel        string
	OpenAIAPIKey    string
	AnthropicAPIKey string

	FinnhubAPIKey string
	OrgSymbols    map[string]string

	ReportOrgIDs []string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		LLMProvider:     getEnv("LLM_PROVIDER", "openai"),
		LLMModel:        os.Getenv("LLM_MODEL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),

		FinnhubAPIKey: os.Getenv("FINNHUB_API_KEY"),
		OrgSymbols:    parsePairs(os.Getenv("ORG_SYMBOLS")),

		ReportOrgIDs: splitList(os.Getenv("REPORT_ORG_IDS")),
	}
}

func getEnv(name, defaultValue string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultValue
}

// parsePairs reads "acme:AAPL,globex:MSFT" style mappings.
func parsePairs(raw string) map[string]string {
	pairs := map[string]string{}
	for _, item := range splitList(raw) {
		key, value, found := strings.Cut(item, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key != "" && value != "" {
			pairs[key] = value
		}
	}
	return pairs
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
